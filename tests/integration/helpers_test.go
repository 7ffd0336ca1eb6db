// Package integration provides shared test helpers for integration tests.
package integration

import (
	"io"
	"log/slog"
	"testing"

	"github.com/CostaWebin/travnik/pkg/sqlite"
	"github.com/CostaWebin/travnik/pkg/types"
)

// openStore opens a store through the public API in an isolated temp
// directory. A nil snapshot exercises the built-in fallback dataset.
func openStore(t *testing.T, snapshot *types.Snapshot) types.Store {
	t.Helper()
	s := sqlite.NewStore()
	err := s.Open(types.Config{
		DataDir:  t.TempDir(),
		Snapshot: snapshot,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// findPlant returns the seeded plant with the given name or fails.
func findPlant(t *testing.T, s types.Store, name string) *types.Plant {
	t.Helper()
	plants, err := s.GetAllPlants()
	if err != nil {
		t.Fatalf("GetAllPlants: %v", err)
	}
	for _, p := range plants {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("plant %q not found", name)
	return nil
}

// findDisease returns the seeded disease with the given name or fails.
func findDisease(t *testing.T, s types.Store, name string) *types.Disease {
	t.Helper()
	diseases, err := s.GetAllDiseases()
	if err != nil {
		t.Fatalf("GetAllDiseases: %v", err)
	}
	for _, d := range diseases {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("disease %q not found", name)
	return nil
}
