// Diseases collection accessor: creation with category normalization,
// primary-key lookup, listing, category filter, and substring search.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/CostaWebin/travnik/pkg/types"
)

const diseaseColumns = "disease_id, name, name_lower, description, category"

// AddDisease creates a disease and returns its store-assigned id. NameLower
// is computed here, and a category outside the closed set collapses to
// Other; the schema itself does not constrain the column.
func (s *Store) AddDisease(d *types.Disease) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}
	return s.addDiseaseLocked(d)
}

func (s *Store) addDiseaseLocked(d *types.Disease) (int64, error) {
	if d == nil {
		return 0, types.ErrInvalidData
	}
	if d.Name == "" {
		return 0, types.ErrInvalidName
	}

	d.NameLower = strings.ToLower(d.Name)
	d.Category = types.NormalizeCategory(d.Category)

	res, err := s.db.Exec(
		"INSERT INTO diseases (name, name_lower, description, category) VALUES (?, ?, ?, ?)",
		d.Name, d.NameLower, d.Description, d.Category,
	)
	if err != nil {
		return 0, fmt.Errorf("adding disease %s: %w", d.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned disease id: %w", err)
	}
	d.ID = id
	return id, nil
}

// GetDiseaseByID returns the disease with the given id, or (nil, nil) when
// no such disease exists.
func (s *Store) GetDiseaseByID(id int64) (*types.Disease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	row := s.db.QueryRow("SELECT "+diseaseColumns+" FROM diseases WHERE disease_id = ?", id)
	d, err := hydrateDisease(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting disease %d: %w", id, err)
	}
	return d, nil
}

// GetAllDiseases returns every disease in insertion order.
func (s *Store) GetAllDiseases() ([]*types.Disease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.queryDiseases("SELECT " + diseaseColumns + " FROM diseases ORDER BY disease_id")
}

// GetDiseasesByCategory returns diseases with the given category via the
// category index. types.CategoryAll is a sentinel for "every disease".
func (s *Store) GetDiseasesByCategory(category string) ([]*types.Disease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.diseasesByCategoryLocked(category)
}

func (s *Store) diseasesByCategoryLocked(category string) ([]*types.Disease, error) {
	if category == types.CategoryAll {
		return s.queryDiseases("SELECT " + diseaseColumns + " FROM diseases ORDER BY disease_id")
	}
	return s.queryDiseases(
		"SELECT "+diseaseColumns+" FROM diseases WHERE category = ? ORDER BY disease_id",
		category,
	)
}

// SearchDiseasesByName returns diseases whose lowercased name contains the
// lowercased query, optionally narrowed to one category. With an empty
// query and a concrete category the call degrades to the category filter;
// with both empty it returns an empty list.
func (s *Store) SearchDiseasesByName(query, category string) ([]*types.Disease, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		if category != "" && category != types.CategoryAll {
			return s.diseasesByCategoryLocked(category)
		}
		return []*types.Disease{}, nil
	}

	if category != "" && category != types.CategoryAll {
		return s.queryDiseases(
			"SELECT "+diseaseColumns+" FROM diseases WHERE instr(name_lower, ?) > 0 AND category = ? ORDER BY disease_id",
			term, category,
		)
	}
	return s.queryDiseases(
		"SELECT "+diseaseColumns+" FROM diseases WHERE instr(name_lower, ?) > 0 ORDER BY disease_id",
		term,
	)
}

func (s *Store) queryDiseases(query string, args ...any) ([]*types.Disease, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying diseases: %w", err)
	}
	defer rows.Close()

	results := []*types.Disease{}
	for rows.Next() {
		d, err := hydrateDiseaseFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating disease: %w", err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating diseases: %w", err)
	}
	return results, nil
}

// diseaseExistsLocked reports whether a disease row exists. Used by link
// creation to validate endpoints before writing.
func (s *Store) diseaseExistsLocked(id int64) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM diseases WHERE disease_id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking disease %d: %w", id, err)
	}
	return true, nil
}

func hydrateDisease(row *sql.Row) (*types.Disease, error) {
	var d types.Disease
	if err := row.Scan(&d.ID, &d.Name, &d.NameLower, &d.Description, &d.Category); err != nil {
		return nil, err
	}
	return &d, nil
}

func hydrateDiseaseFromRows(rows *sql.Rows) (*types.Disease, error) {
	var d types.Disease
	if err := rows.Scan(&d.ID, &d.Name, &d.NameLower, &d.Description, &d.Category); err != nil {
		return nil, err
	}
	return &d, nil
}
