package sqlite

import (
	"errors"
	"testing"

	"github.com/CostaWebin/travnik/pkg/types"
)

func addTestDiseases(t *testing.T, s *Store) {
	t.Helper()
	diseases := []*types.Disease{
		{Name: "Простуда", Category: types.CategoryRespiratory},
		{Name: "Кашель", Category: types.CategoryRespiratory},
		{Name: "Гастрит", Category: types.CategoryDigestive},
		{Name: "Бессонница", Category: types.CategoryNervous},
	}
	for _, d := range diseases {
		if _, err := s.AddDisease(d); err != nil {
			t.Fatalf("adding %s: %v", d.Name, err)
		}
	}
}

func TestAddDiseaseValidation(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.AddDisease(nil); !errors.Is(err, types.ErrInvalidData) {
		t.Errorf("nil disease: got %v, want ErrInvalidData", err)
	}
	if _, err := s.AddDisease(&types.Disease{}); !errors.Is(err, types.ErrInvalidName) {
		t.Errorf("empty name: got %v, want ErrInvalidName", err)
	}
}

// Unknown categories collapse to Other on write, so category queries always
// operate over the closed set.
func TestAddDiseaseNormalizesCategory(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddDisease(&types.Disease{Name: "Мигрень", Category: "Neurological"})
	if err != nil {
		t.Fatalf("adding disease: %v", err)
	}

	d, err := s.GetDiseaseByID(id)
	if err != nil {
		t.Fatalf("getting disease: %v", err)
	}
	if d.Category != types.CategoryOther {
		t.Errorf("category: got %q, want %q", d.Category, types.CategoryOther)
	}
}

func TestGetDiseasesByCategory(t *testing.T) {
	s := newTestStore(t)
	addTestDiseases(t, s)

	respiratory, err := s.GetDiseasesByCategory(types.CategoryRespiratory)
	if err != nil {
		t.Fatalf("by category: %v", err)
	}
	if len(respiratory) != 2 {
		t.Errorf("respiratory: got %d, want 2", len(respiratory))
	}

	all, err := s.GetDiseasesByCategory(types.CategoryAll)
	if err != nil {
		t.Fatalf("category All: %v", err)
	}
	everything, err := s.GetAllDiseases()
	if err != nil {
		t.Fatalf("GetAllDiseases: %v", err)
	}
	if len(all) != len(everything) {
		t.Errorf("category All returned %d, GetAllDiseases returned %d", len(all), len(everything))
	}

	skin, err := s.GetDiseasesByCategory(types.CategorySkin)
	if err != nil {
		t.Fatalf("empty category: %v", err)
	}
	if len(skin) != 0 {
		t.Errorf("skin: got %d, want 0", len(skin))
	}
}

func TestSearchDiseasesByName(t *testing.T) {
	s := newTestStore(t)
	addTestDiseases(t, s)

	got, err := s.SearchDiseasesByName("просту", types.CategoryAll)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Простуда" {
		t.Errorf("substring search: got %+v", got)
	}

	// The category filter intersects with the name match.
	got, err = s.SearchDiseasesByName("просту", types.CategoryDigestive)
	if err != nil {
		t.Fatalf("search with category: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("mismatched category: got %d results, want 0", len(got))
	}

	// Empty query with a concrete category falls back to a category listing.
	got, err = s.SearchDiseasesByName("", types.CategoryRespiratory)
	if err != nil {
		t.Fatalf("empty query with category: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("category-only search: got %d, want 2", len(got))
	}

	// Empty query and the All sentinel return nothing.
	got, err = s.SearchDiseasesByName("  ", types.CategoryAll)
	if err != nil {
		t.Fatalf("blank query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("blank query: got %d results, want 0", len(got))
	}
}

func TestGetDiseaseByIDAbsent(t *testing.T) {
	s := newTestStore(t)

	d, err := s.GetDiseaseByID(7)
	if err != nil {
		t.Fatalf("lookup of absent id: %v", err)
	}
	if d != nil {
		t.Errorf("absent id returned %+v", d)
	}
}

func TestCategoryHelpers(t *testing.T) {
	for _, c := range types.Categories() {
		if !types.ValidCategory(c) {
			t.Errorf("listed category %q not valid", c)
		}
	}
	if types.ValidCategory("Cardiovascular") {
		t.Error("unknown category reported valid")
	}
	if got := types.NormalizeCategory("Cardiovascular"); got != types.CategoryOther {
		t.Errorf("normalize unknown: got %q", got)
	}
	if got := types.NormalizeCategory(types.CategoryPain); got != types.CategoryPain {
		t.Errorf("normalize known: got %q", got)
	}
}
