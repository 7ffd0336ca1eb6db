package sqlite

import (
	"errors"
	"testing"

	"github.com/CostaWebin/travnik/pkg/types"
)

func TestAddPlantAssignsMonotonicIDs(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddPlant(&types.Plant{Name: "Ромашка аптечная"})
	if err != nil {
		t.Fatalf("adding first plant: %v", err)
	}
	second, err := s.AddPlant(&types.Plant{Name: "Мята перечная"})
	if err != nil {
		t.Fatalf("adding second plant: %v", err)
	}
	if second <= first {
		t.Errorf("ids not monotonic: first %d, second %d", first, second)
	}
}

func TestAddPlantComputesNameLower(t *testing.T) {
	s := newTestStore(t)

	p := &types.Plant{Name: "РОМАШКА Аптечная", NameLower: "bogus"}
	id, err := s.AddPlant(p)
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}
	if p.NameLower != "ромашка аптечная" {
		t.Errorf("NameLower on input: got %q", p.NameLower)
	}

	stored, err := s.GetPlantByID(id)
	if err != nil {
		t.Fatalf("getting plant: %v", err)
	}
	if stored.NameLower != "ромашка аптечная" {
		t.Errorf("NameLower in store: got %q", stored.NameLower)
	}
}

func TestAddPlantValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddPlant(nil); !errors.Is(err, types.ErrInvalidData) {
		t.Errorf("nil plant: got %v, want ErrInvalidData", err)
	}
	if _, err := s.AddPlant(&types.Plant{}); !errors.Is(err, types.ErrInvalidName) {
		t.Errorf("empty name: got %v, want ErrInvalidName", err)
	}
}

func TestGetPlantByIDAbsent(t *testing.T) {
	s := newTestStore(t)

	p, err := s.GetPlantByID(42)
	if err != nil {
		t.Fatalf("lookup of absent id: %v", err)
	}
	if p != nil {
		t.Errorf("absent id returned %+v", p)
	}
}

func TestPlantUsesRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddPlant(&types.Plant{
		Name: "Имбирь лекарственный",
		Uses: []string{"Nausea", "Colds"},
	})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}

	p, err := s.GetPlantByID(id)
	if err != nil {
		t.Fatalf("getting plant: %v", err)
	}
	if len(p.Uses) != 2 || p.Uses[0] != "Nausea" || p.Uses[1] != "Colds" {
		t.Errorf("uses: got %v", p.Uses)
	}

	// nil uses round-trip as nil, not as an empty slice.
	id, err = s.AddPlant(&types.Plant{Name: "Липа сердцевидная"})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}
	p, err = s.GetPlantByID(id)
	if err != nil {
		t.Fatalf("getting plant: %v", err)
	}
	if p.Uses != nil {
		t.Errorf("uses for plant without any: got %v, want nil", p.Uses)
	}
}

func TestSearchPlantsByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Ромашка аптечная", "Мята перечная", "Ромашка пахучая"} {
		if _, err := s.AddPlant(&types.Plant{Name: name}); err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"ромашка", []string{"Ромашка аптечная", "Ромашка пахучая"}},
		{"РОМАШКА", []string{"Ромашка аптечная", "Ромашка пахучая"}},
		{"  мята  ", []string{"Мята перечная"}},
		{"аптечная", []string{"Ромашка аптечная"}},
		{"женьшень", []string{}},
		{"", []string{}},
		{"   ", []string{}},
	}
	for _, tc := range tests {
		got, err := s.SearchPlantsByName(tc.query)
		if err != nil {
			t.Fatalf("search %q: %v", tc.query, err)
		}
		if len(got) != len(tc.want) {
			t.Errorf("search %q: got %d results, want %d", tc.query, len(got), len(tc.want))
			continue
		}
		for i, p := range got {
			if p.Name != tc.want[i] {
				t.Errorf("search %q result %d: got %q, want %q", tc.query, i, p.Name, tc.want[i])
			}
		}
	}
}

func TestGetAllPlantsInsertionOrder(t *testing.T) {
	s := newTestStore(t)

	names := []string{"Чабрец (тимьян)", "Алоэ вера", "Валериана лекарственная"}
	for _, name := range names {
		if _, err := s.AddPlant(&types.Plant{Name: name}); err != nil {
			t.Fatalf("adding %s: %v", name, err)
		}
	}

	plants, err := s.GetAllPlants()
	if err != nil {
		t.Fatalf("GetAllPlants: %v", err)
	}
	if len(plants) != len(names) {
		t.Fatalf("got %d plants, want %d", len(plants), len(names))
	}
	for i, p := range plants {
		if p.Name != names[i] {
			t.Errorf("position %d: got %q, want %q", i, p.Name, names[i])
		}
	}
}
