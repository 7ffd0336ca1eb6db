package sqlite

import (
	"errors"
	"testing"

	"github.com/CostaWebin/travnik/pkg/types"
)

func TestLinkPlantDisease(t *testing.T) {
	s := newTestStore(t)

	plantID, err := s.AddPlant(&types.Plant{Name: "Шалфей лекарственный"})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}
	diseaseID, err := s.AddDisease(&types.Disease{Name: "Боль в горле", Category: types.CategoryRespiratory})
	if err != nil {
		t.Fatalf("adding disease: %v", err)
	}

	linkID, err := s.LinkPlantDisease(plantID, diseaseID, "1 ст.ложка на стакан кипятка", "Полоскать 5-6 раз в день", "")
	if err != nil {
		t.Fatalf("linking: %v", err)
	}
	if linkID == "" {
		t.Error("link id is empty")
	}

	remedies, err := s.GetDiseasesForPlant(plantID)
	if err != nil {
		t.Fatalf("GetDiseasesForPlant: %v", err)
	}
	if len(remedies) != 1 {
		t.Fatalf("remedies: got %d, want 1", len(remedies))
	}
	if remedies[0].Name != "Боль в горле" {
		t.Errorf("remedy disease: got %q", remedies[0].Name)
	}
	if remedies[0].Recipe != "1 ст.ложка на стакан кипятка" {
		t.Errorf("remedy recipe: got %q", remedies[0].Recipe)
	}

	plants, err := s.GetPlantsForDisease(diseaseID)
	if err != nil {
		t.Fatalf("GetPlantsForDisease: %v", err)
	}
	if len(plants) != 1 || plants[0].Name != "Шалфей лекарственный" {
		t.Errorf("reverse lookup: got %+v", plants)
	}
	if plants[0].Dosage != "Полоскать 5-6 раз в день" {
		t.Errorf("reverse lookup dosage: got %q", plants[0].Dosage)
	}
}

// A link with a dangling endpoint is rejected before anything is written.
func TestLinkReferentialMismatch(t *testing.T) {
	s := newTestStore(t)

	plantID, err := s.AddPlant(&types.Plant{Name: "Календула лекарственная"})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}
	diseaseID, err := s.AddDisease(&types.Disease{Name: "Раны, порезы", Category: types.CategorySkin})
	if err != nil {
		t.Fatalf("adding disease: %v", err)
	}

	if _, err := s.LinkPlantDisease(99999, diseaseID, "", "", ""); !errors.Is(err, types.ErrReferentialMismatch) {
		t.Errorf("dangling plant: got %v, want ErrReferentialMismatch", err)
	}
	if _, err := s.LinkPlantDisease(plantID, 99999, "", "", ""); !errors.Is(err, types.ErrReferentialMismatch) {
		t.Errorf("dangling disease: got %v, want ErrReferentialMismatch", err)
	}

	s.mu.RLock()
	count, err := s.countLinksLocked()
	s.mu.RUnlock()
	if err != nil {
		t.Fatalf("counting links: %v", err)
	}
	if count != 0 {
		t.Errorf("rejected links left %d rows behind", count)
	}
}

// The same pair may be linked more than once: each call records a distinct
// edge with its own recipe.
func TestDuplicateLinksAllowed(t *testing.T) {
	s := newTestStore(t)

	plantID, err := s.AddPlant(&types.Plant{Name: "Мята перечная"})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}
	diseaseID, err := s.AddDisease(&types.Disease{Name: "Тошнота", Category: types.CategoryDigestive})
	if err != nil {
		t.Fatalf("adding disease: %v", err)
	}

	first, err := s.LinkPlantDisease(plantID, diseaseID, "Свежие листья заварить кипятком", "", "")
	if err != nil {
		t.Fatalf("first link: %v", err)
	}
	second, err := s.LinkPlantDisease(plantID, diseaseID, "Настойка на спирту", "", "")
	if err != nil {
		t.Fatalf("second link: %v", err)
	}
	if first == second {
		t.Error("duplicate links share an id")
	}

	remedies, err := s.GetDiseasesForPlant(plantID)
	if err != nil {
		t.Fatalf("GetDiseasesForPlant: %v", err)
	}
	if len(remedies) != 2 {
		t.Errorf("remedies: got %d, want 2", len(remedies))
	}
}

func TestJoinsForUnlinkedRecords(t *testing.T) {
	s := newTestStore(t)

	plantID, err := s.AddPlant(&types.Plant{Name: "Крапива двудомная"})
	if err != nil {
		t.Fatalf("adding plant: %v", err)
	}

	remedies, err := s.GetDiseasesForPlant(plantID)
	if err != nil {
		t.Fatalf("GetDiseasesForPlant: %v", err)
	}
	if len(remedies) != 0 {
		t.Errorf("unlinked plant: got %d remedies, want 0", len(remedies))
	}

	plants, err := s.GetPlantsForDisease(12345)
	if err != nil {
		t.Fatalf("GetPlantsForDisease: %v", err)
	}
	if len(plants) != 0 {
		t.Errorf("absent disease: got %d plants, want 0", len(plants))
	}
}
