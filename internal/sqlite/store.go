// Package sqlite implements the SQLite storage backend for the Travnik
// herbal catalog: store lifecycle, versioned schema evolution, first-run
// seeding, and the query engine over plants, diseases, links, and metadata.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/CostaWebin/travnik/pkg/types"
)

// dbFileName is the database file created under Config.DataDir.
const dbFileName = "travnik.db"

// Store implements types.Store on a single SQLite database. One Store owns
// one database handle; independent stores (for tests, for example) do not
// share state.
type Store struct {
	mu     sync.RWMutex
	open   bool
	config types.Config
	db     *sql.DB
	logger *slog.Logger

	// seeding latches while a seed pass runs, so two callers that both
	// observe an empty store cannot populate it twice.
	seeding bool
}

var _ types.Store = (*Store)(nil)

// NewStore creates an unopened store. Call Open with a Config to use it.
func NewStore() *Store {
	return &Store{}
}

// Open creates or opens the database under config.DataDir, applies pending
// schema upgrades, and seeds the store when the plants collection is empty.
// Open is idempotent: reopening an already open store returns nil without
// re-upgrading or re-seeding.
//
// Open failures wrap types.ErrStoreOpen; upgrade failures wrap
// types.ErrSchemaUpgrade. Both are fatal and must not be retried.
func (s *Store) Open(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.open {
		return nil
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: creating data directory: %v", types.ErrStoreOpen, err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrStoreOpen, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("%w: %v", types.ErrStoreOpen, err)
	}

	// Schema upgrades are the one exclusivity point: the write lock is
	// held until every pending step has committed, so no read or write
	// observes a half-built index set.
	if err := migrate(db, logger); err != nil {
		db.Close()
		return err
	}

	s.db = db
	s.config = config
	s.logger = logger
	s.open = true

	empty, err := s.isEmptyLocked()
	if err != nil {
		s.closeLocked()
		return fmt.Errorf("%w: checking seed state: %v", types.ErrStoreOpen, err)
	}
	if empty {
		if err := s.seedLocked(config.Snapshot); err != nil {
			s.closeLocked()
			return err
		}
	}

	return nil
}

// Close releases the database handle. Idempotent; after Close every
// operation returns types.ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *Store) closeLocked() error {
	if !s.open {
		return nil
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		s.db = nil
	}
	s.open = false
	return nil
}

// IsEmpty reports whether the plants collection has zero records. Only
// plants count: diseases and links are not inspected, matching the seed
// gate contract.
func (s *Store) IsEmpty() (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return false, types.ErrStoreClosed
	}
	return s.isEmptyLocked()
}

func (s *Store) isEmptyLocked() (bool, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM plants").Scan(&count); err != nil {
		return false, fmt.Errorf("counting plants: %w", err)
	}
	return count == 0, nil
}

// generateLinkID returns a UUID v7 for link records, falling back to v4 if
// v7 generation fails.
func generateLinkID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
