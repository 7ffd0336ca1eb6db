// Integration tests for seeding from an external snapshot file.
package integration

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalsqlite "github.com/CostaWebin/travnik/internal/sqlite"
	"github.com/CostaWebin/travnik/pkg/types"
)

const snapshotJSON = `{
  "metadata": {
    "version": "2.0.0",
    "createdAt": "2026-05-20T10:00:00Z",
    "source": "wikidata",
    "language": "ru",
    "disclaimer": "Справочная информация"
  },
  "plants": [
    {"name": "Эхинацея пурпурная", "latinName": "Echinacea purpurea", "uses": ["Immune support"]},
    {"name": "Солодка голая", "latinName": "Glycyrrhiza glabra"}
  ],
  "diseases": [
    {"name": "Простуда", "category": "Respiratory"},
    {"name": "Кашель", "category": "Respiratory"}
  ],
  "relationships": [
    {"plantName": "Эхинацея пурпурная", "diseaseName": "Простуда", "recipe": "Настойка корня", "dosage": "20 капель 3 раза в день"},
    {"plantName": "Солодка голая", "diseaseName": "Кашель", "recipe": "Отвар корня"},
    {"plantName": "Женьшень", "diseaseName": "Кашель", "recipe": "нет такого растения"}
  ]
}`

// TestSnapshotFileSeeding parses a snapshot file the way the CLI does and
// opens a store with it. The unresolvable relationship is skipped; the rest
// of the snapshot seeds normally.
func TestSnapshotFileSeeding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(snapshotJSON), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	snap, err := internalsqlite.DecodeSnapshot(data)
	require.NoError(t, err)

	s := openStore(t, snap)

	plants, err := s.GetAllPlants()
	require.NoError(t, err)
	require.Len(t, plants, 2)
	assert.Equal(t, "Echinacea purpurea", plants[0].LatinName)
	assert.Equal(t, []string{"Immune support"}, plants[0].Uses)

	echinacea := findPlant(t, s, "Эхинацея пурпурная")
	remedies, err := s.GetDiseasesForPlant(echinacea.ID)
	require.NoError(t, err)
	require.Len(t, remedies, 1)
	assert.Equal(t, "Простуда", remedies[0].Name)
	assert.Equal(t, "Настойка корня", remedies[0].Recipe)

	meta, err := s.GetMetadata()
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "2.0.0", meta.Version)
	assert.Equal(t, "wikidata", meta.Source)
	assert.Equal(t, "2026-05-20", meta.CreatedAt.UTC().Format("2006-01-02"))
}

// TestSnapshotIgnoredWhenPopulated verifies a snapshot passed to an already
// populated store changes nothing.
func TestSnapshotIgnoredWhenPopulated(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	first := openStoreInDir(t, dir, nil, logger)
	plants, err := first.GetAllPlants()
	require.NoError(t, err)
	require.Len(t, plants, 10)
	require.NoError(t, first.Close())

	snap, err := internalsqlite.DecodeSnapshot([]byte(snapshotJSON))
	require.NoError(t, err)

	second := openStoreInDir(t, dir, snap, logger)
	plants, err = second.GetAllPlants()
	require.NoError(t, err)
	assert.Len(t, plants, 10, "populated store was reseeded")
}

func openStoreInDir(t *testing.T, dir string, snap *types.Snapshot, logger *slog.Logger) types.Store {
	t.Helper()
	s := internalsqlite.NewStore()
	require.NoError(t, s.Open(types.Config{DataDir: dir, Snapshot: snap, Logger: logger}))
	t.Cleanup(func() { s.Close() })
	return s
}
