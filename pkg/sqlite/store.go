// Package sqlite provides the public API for the SQLite Travnik store.
// This package exposes the factory function for creating stores while
// keeping implementation details internal.
package sqlite

import (
	"github.com/CostaWebin/travnik/internal/sqlite"
	"github.com/CostaWebin/travnik/pkg/types"
)

// NewStore creates a new SQLite store instance.
// The store is not open; call Open with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewStore()
//	err := store.Open(types.Config{
//	    DataDir: ".travnik",
//	})
//	defer store.Close()
func NewStore() types.Store {
	return sqlite.NewStore()
}
