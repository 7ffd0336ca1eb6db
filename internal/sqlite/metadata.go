// Metadata singleton accessor. One record describes the loaded dataset;
// writing replaces it wholesale via an upsert on a fixed key.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/CostaWebin/travnik/pkg/types"
)

// metaKey is the fixed key of the singleton metadata row.
const metaKey = "dataset"

// SaveMetadata replaces the dataset metadata record.
func (s *Store) SaveMetadata(m *types.Metadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return types.ErrStoreClosed
	}
	return s.saveMetadataLocked(m)
}

func (s *Store) saveMetadataLocked(m *types.Metadata) error {
	if m == nil {
		return types.ErrInvalidData
	}

	createdAt := m.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO metadata (meta_key, version, created_at, source, language, disclaimer)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(meta_key) DO UPDATE SET
             version = excluded.version,
             created_at = excluded.created_at,
             source = excluded.source,
             language = excluded.language,
             disclaimer = excluded.disclaimer`,
		metaKey, m.Version, createdAt.Format(time.RFC3339), m.Source, m.Language, m.Disclaimer,
	)
	if err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}
	return nil
}

// GetMetadata returns the dataset metadata, or (nil, nil) when none has
// been written yet.
func (s *Store) GetMetadata() (*types.Metadata, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.open {
		return nil, types.ErrStoreClosed
	}

	row := s.db.QueryRow(
		"SELECT version, created_at, source, language, disclaimer FROM metadata WHERE meta_key = ?",
		metaKey,
	)

	var m types.Metadata
	var createdAt string
	err := row.Scan(&m.Version, &createdAt, &m.Source, &m.Language, &m.Disclaimer)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting metadata: %w", err)
	}

	m.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata created_at: %w", err)
	}
	return &m, nil
}
