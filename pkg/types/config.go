package types

import "log/slog"

// Config holds parameters for Store.Open.
type Config struct {
	// DataDir is the directory holding the database file. Created if
	// missing; defaults to "." when empty.
	DataDir string `json:"data_dir" yaml:"data_dir"`

	// Snapshot is an optional parsed seed document. When the store opens
	// empty and Snapshot is nil, the built-in sample dataset seeds instead.
	Snapshot *Snapshot `json:"-" yaml:"-"`

	// Logger receives seed progress and skip notices. When nil the store
	// uses slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-"`
}
