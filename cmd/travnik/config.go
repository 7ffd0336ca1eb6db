// Config loading for the travnik CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/CostaWebin/travnik/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir  = "data_dir"
	cfgKeySnapshot = "snapshot"
	cfgKeyLogLevel = "log_level"

	defaultConfigDirName = ".travnik"
	defaultLogLevel      = "warn"
)

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Travnik CLI configuration

# Data directory (optional; overridable by --data-dir flag)
# data_dir:

# Seed snapshot JSON file (optional; overridable by --snapshot flag)
# snapshot:

# Log level: debug, info, warn, error
log_level: warn
`

// loadConfig reads config.yaml from the resolved config directory using
// Viper, applies flag overrides, and assembles the store Config. It creates
// the config directory and a default config.yaml on first run. A missing
// config.yaml is not an error.
func loadConfig(configDir string) (types.Config, error) {
	dir, err := resolveConfigDir(configDir)
	if err != nil {
		return types.Config{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return types.Config{}, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(dir); err != nil {
		return types.Config{}, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return types.Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	dataDir := v.GetString(cfgKeyDataDir)
	if flagDataDir != "" {
		dataDir = flagDataDir
	}
	if dataDir == "" {
		dataDir = filepath.Join(dir, "data")
	}

	snapshotPath := v.GetString(cfgKeySnapshot)
	if flagSnapshot != "" {
		snapshotPath = flagSnapshot
	}

	logger := newLogger(v.GetString(cfgKeyLogLevel))

	var snap *types.Snapshot
	if snapshotPath != "" {
		snap = loadSnapshot(snapshotPath, logger)
	}

	return types.Config{
		DataDir:  dataDir,
		Snapshot: snap,
		Logger:   logger,
	}, nil
}

// resolveConfigDir picks the config directory: the --config flag, then a
// .travnik directory in the working directory, then ~/.travnik.
func resolveConfigDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if info, err := os.Stat(defaultConfigDirName); err == nil && info.IsDir() {
		return defaultConfigDirName, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, defaultConfigDirName), nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
