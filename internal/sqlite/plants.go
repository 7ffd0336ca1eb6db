// Plants collection accessor: creation, primary-key lookup, listing, and
// substring search.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CostaWebin/travnik/pkg/types"
)

const plantColumns = "plant_id, name, name_lower, latin_name, description, properties, uses, toxicity, image_path"

// AddPlant creates a plant and returns its store-assigned id. NameLower is
// computed here from Name on every write; callers never supply it.
func (s *Store) AddPlant(p *types.Plant) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return 0, types.ErrStoreClosed
	}
	return s.addPlantLocked(p)
}

func (s *Store) addPlantLocked(p *types.Plant) (int64, error) {
	if p == nil {
		return 0, types.ErrInvalidData
	}
	if p.Name == "" {
		return 0, types.ErrInvalidName
	}

	p.NameLower = strings.ToLower(p.Name)

	uses, err := marshalUses(p.Uses)
	if err != nil {
		return 0, fmt.Errorf("encoding uses for %s: %w", p.Name, err)
	}

	res, err := s.db.Exec(
		"INSERT INTO plants (name, name_lower, latin_name, description, properties, uses, toxicity, image_path) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		p.Name, p.NameLower, p.LatinName, p.Description, p.Properties, uses, p.Toxicity, p.ImagePath,
	)
	if err != nil {
		return 0, fmt.Errorf("adding plant %s: %w", p.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading assigned plant id: %w", err)
	}
	p.ID = id
	return id, nil
}

// GetPlantByID returns the plant with the given id, or (nil, nil) when no
// such plant exists. Absence is a normal outcome, not an error.
func (s *Store) GetPlantByID(id int64) (*types.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	row := s.db.QueryRow("SELECT "+plantColumns+" FROM plants WHERE plant_id = ?", id)
	p, err := hydratePlant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting plant %d: %w", id, err)
	}
	return p, nil
}

// GetAllPlants returns every plant in insertion order.
func (s *Store) GetAllPlants() ([]*types.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}
	return s.queryPlants("SELECT " + plantColumns + " FROM plants ORDER BY plant_id")
}

// SearchPlantsByName returns plants whose lowercased name contains the
// lowercased query. An empty or whitespace-only query returns an empty
// list, not every plant. Results keep insertion order; no relevance
// ranking is applied.
func (s *Store) SearchPlantsByName(query string) ([]*types.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []*types.Plant{}, nil
	}

	return s.queryPlants(
		"SELECT "+plantColumns+" FROM plants WHERE instr(name_lower, ?) > 0 ORDER BY plant_id",
		term,
	)
}

func (s *Store) queryPlants(query string, args ...any) ([]*types.Plant, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plants: %w", err)
	}
	defer rows.Close()

	results := []*types.Plant{}
	for rows.Next() {
		p, err := hydratePlantFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating plant: %w", err)
		}
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	return results, nil
}

// plantExistsLocked reports whether a plant row exists. Used by link
// creation to validate endpoints before writing.
func (s *Store) plantExistsLocked(id int64) (bool, error) {
	var one int
	err := s.db.QueryRow("SELECT 1 FROM plants WHERE plant_id = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking plant %d: %w", id, err)
	}
	return true, nil
}

func hydratePlant(row *sql.Row) (*types.Plant, error) {
	var p types.Plant
	var uses string
	if err := row.Scan(&p.ID, &p.Name, &p.NameLower, &p.LatinName, &p.Description, &p.Properties, &uses, &p.Toxicity, &p.ImagePath); err != nil {
		return nil, err
	}
	if err := unmarshalUses(uses, &p.Uses); err != nil {
		return nil, err
	}
	return &p, nil
}

func hydratePlantFromRows(rows *sql.Rows) (*types.Plant, error) {
	var p types.Plant
	var uses string
	if err := rows.Scan(&p.ID, &p.Name, &p.NameLower, &p.LatinName, &p.Description, &p.Properties, &uses, &p.Toxicity, &p.ImagePath); err != nil {
		return nil, err
	}
	if err := unmarshalUses(uses, &p.Uses); err != nil {
		return nil, err
	}
	return &p, nil
}

// marshalUses encodes the uses list as a JSON array for its TEXT column.
// A nil slice encodes as the empty array.
func marshalUses(uses []string) (string, error) {
	if uses == nil {
		return "[]", nil
	}
	b, err := json.Marshal(uses)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalUses(raw string, into *[]string) error {
	if raw == "" || raw == "[]" {
		*into = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), into); err != nil {
		return fmt.Errorf("decoding uses: %w", err)
	}
	return nil
}
