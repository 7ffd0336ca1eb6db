// Links collection accessor: validated creation and the relationship
// traversals joining links with their plant or disease endpoint.
package sqlite

import (
	"fmt"
	"time"

	"github.com/CostaWebin/travnik/pkg/types"
)

// LinkPlantDisease records that a plant is a remedy for a disease. Both
// endpoints are validated before the insert; on a missing endpoint the
// operation returns types.ErrReferentialMismatch and writes nothing.
//
// Duplicate (plantID, diseaseID) pairs are accepted; avoiding them is the
// caller's responsibility.
func (s *Store) LinkPlantDisease(plantID, diseaseID int64, recipe, dosage, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return "", types.ErrStoreClosed
	}
	return s.linkLocked(plantID, diseaseID, recipe, dosage, notes)
}

func (s *Store) linkLocked(plantID, diseaseID int64, recipe, dosage, notes string) (string, error) {
	ok, err := s.plantExistsLocked(plantID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: plant %d", types.ErrReferentialMismatch, plantID)
	}

	ok, err = s.diseaseExistsLocked(diseaseID)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: disease %d", types.ErrReferentialMismatch, diseaseID)
	}

	link := types.PlantDiseaseLink{
		LinkID:    generateLinkID(),
		PlantID:   plantID,
		DiseaseID: diseaseID,
		Recipe:    recipe,
		Dosage:    dosage,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}

	_, err = s.db.Exec(
		"INSERT INTO plant_diseases (link_id, plant_id, disease_id, recipe, dosage, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		link.LinkID, link.PlantID, link.DiseaseID, link.Recipe, link.Dosage, link.Notes,
		link.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("linking plant %d to disease %d: %w", plantID, diseaseID, err)
	}

	return link.LinkID, nil
}

// GetDiseasesForPlant returns every disease linked to the plant, each
// merged with its link's recipe, dosage, and notes. Order follows link
// retrieval order. A plant with no links (or an unknown id) yields an
// empty list.
func (s *Store) GetDiseasesForPlant(plantID int64) ([]*types.DiseaseRemedy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(
		`SELECT d.disease_id, d.name, d.name_lower, d.description, d.category,
                l.recipe, l.dosage, l.notes
         FROM plant_diseases l
         JOIN diseases d ON d.disease_id = l.disease_id
         WHERE l.plant_id = ?
         ORDER BY l.rowid`,
		plantID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying remedies for plant %d: %w", plantID, err)
	}
	defer rows.Close()

	results := []*types.DiseaseRemedy{}
	for rows.Next() {
		var r types.DiseaseRemedy
		if err := rows.Scan(&r.ID, &r.Name, &r.NameLower, &r.Description, &r.Category, &r.Recipe, &r.Dosage, &r.Notes); err != nil {
			return nil, fmt.Errorf("hydrating remedy: %w", err)
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating remedies: %w", err)
	}
	return results, nil
}

// GetPlantsForDisease is the symmetric traversal: every plant linked to the
// disease, merged with the link's recipe fields.
func (s *Store) GetPlantsForDisease(diseaseID int64) ([]*types.PlantRemedy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	rows, err := s.db.Query(
		`SELECT p.plant_id, p.name, p.name_lower, p.latin_name, p.description, p.properties,
                p.uses, p.toxicity, p.image_path, l.recipe, l.dosage, l.notes
         FROM plant_diseases l
         JOIN plants p ON p.plant_id = l.plant_id
         WHERE l.disease_id = ?
         ORDER BY l.rowid`,
		diseaseID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying remedies for disease %d: %w", diseaseID, err)
	}
	defer rows.Close()

	results := []*types.PlantRemedy{}
	for rows.Next() {
		var r types.PlantRemedy
		var uses string
		if err := rows.Scan(&r.ID, &r.Name, &r.NameLower, &r.LatinName, &r.Description, &r.Properties, &uses, &r.Toxicity, &r.ImagePath, &r.Recipe, &r.Dosage, &r.Notes); err != nil {
			return nil, fmt.Errorf("hydrating remedy: %w", err)
		}
		if err := unmarshalUses(uses, &r.Uses); err != nil {
			return nil, err
		}
		results = append(results, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating remedies: %w", err)
	}
	return results, nil
}

// countLinksLocked returns the links row count. Seed reporting only.
func (s *Store) countLinksLocked() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plant_diseases").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting links: %w", err)
	}
	return count, nil
}
