// Seed snapshot loading for the travnik CLI.
package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	storesqlite "github.com/CostaWebin/travnik/internal/sqlite"
	"github.com/CostaWebin/travnik/pkg/types"
)

// loadSnapshot reads and parses a seed snapshot file, JSON by default and
// YAML for .yaml/.yml paths. Snapshot failures are never fatal: the store
// falls back to its built-in dataset, so this logs a warning and returns
// nil.
func loadSnapshot(path string, logger *slog.Logger) *types.Snapshot {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("snapshot unavailable, built-in dataset will be used on first run",
			"path", path, "error", err)
		return nil
	}

	var snap *types.Snapshot
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var s types.Snapshot
		if err := yaml.Unmarshal(data, &s); err != nil {
			logger.Warn("snapshot unreadable, built-in dataset will be used on first run",
				"path", path, "error", err)
			return nil
		}
		snap = &s
	default:
		snap, err = storesqlite.DecodeSnapshot(data)
		if err != nil {
			logger.Warn("snapshot unreadable, built-in dataset will be used on first run",
				"path", path, "error", err)
			return nil
		}
	}
	return snap
}
