// Fuzzy name search over the plants and diseases collections.
package sqlite

import (
	"sort"
	"strings"

	"github.com/CostaWebin/travnik/internal/fuzzy"
	"github.com/CostaWebin/travnik/pkg/types"
)

// scored pairs an entity with its match quality for ranking.
type scored struct {
	entity     any
	distance   int
	similarity float64
}

// FuzzySearch scans every name in the chosen collection, keeps entities
// within maxDistance edits of the lowercased query, and returns them in
// descending similarity order (ties keep insertion order), capped at
// types.FuzzyResultLimit. A non-positive maxDistance falls back to
// types.DefaultMaxDistance.
//
// The scan is linear in collection size.
func (s *Store) FuzzySearch(query, collection string, maxDistance int) ([]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	if maxDistance <= 0 {
		maxDistance = types.DefaultMaxDistance
	}

	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return []any{}, nil
	}

	var candidates []scored
	switch collection {
	case types.PlantsCollection:
		plants, err := s.queryPlants("SELECT " + plantColumns + " FROM plants ORDER BY plant_id")
		if err != nil {
			return nil, err
		}
		for _, p := range plants {
			d := fuzzy.EditDistance(term, p.NameLower)
			if d <= maxDistance {
				candidates = append(candidates, scored{p, d, fuzzy.Similarity(term, p.NameLower)})
			}
		}
	case types.DiseasesCollection:
		diseases, err := s.queryDiseases("SELECT " + diseaseColumns + " FROM diseases ORDER BY disease_id")
		if err != nil {
			return nil, err
		}
		for _, d := range diseases {
			dist := fuzzy.EditDistance(term, d.NameLower)
			if dist <= maxDistance {
				candidates = append(candidates, scored{d, dist, fuzzy.Similarity(term, d.NameLower)})
			}
		}
	default:
		return nil, types.ErrUnknownCollection
	}

	// Stable: equal similarity keeps store-native order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].similarity > candidates[j].similarity
	})

	if len(candidates) > types.FuzzyResultLimit {
		candidates = candidates[:types.FuzzyResultLimit]
	}

	results := make([]any, len(candidates))
	for i, c := range candidates {
		results[i] = c.entity
	}
	return results, nil
}
