// Package main provides the travnik CLI, a reference catalog of medicinal
// plants and the ailments they are used for.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/CostaWebin/travnik/pkg/sqlite"
	"github.com/CostaWebin/travnik/pkg/types"
)

var (
	// configFile is set by the --config flag.
	configFile string

	// flagDataDir overrides the configured data directory.
	flagDataDir string

	// flagSnapshot points to a seed snapshot JSON file.
	flagSnapshot string

	// flagJSON switches command output to JSON.
	flagJSON bool

	// store is the global Store instance, opened on startup.
	store types.Store

	// storeConfig is the resolved config the store was opened with.
	storeConfig types.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "travnik",
	Short: "Travnik is a medicinal plant catalog",
	Long: `Travnik is a local catalog of medicinal plants, diseases, and the
herbal remedies connecting them. It keeps its data in an embedded SQLite
database and seeds a built-in reference dataset on first run.`,
	PersistentPreRunE: openStore,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config directory (default: .travnik or ~/.travnik)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSnapshot, "snapshot", "", "seed snapshot JSON file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(plantCmd)
	rootCmd.AddCommand(diseaseCmd)
	rootCmd.AddCommand(categoriesCmd)
}

// openStore loads config and opens the global store.
func openStore(cmd *cobra.Command, args []string) error {
	// Skip for commands that never touch the database.
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	s := sqlite.NewStore()
	if err := s.Open(cfg); err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	store = s
	storeConfig = cfg
	return nil
}

// closeStore releases the global store.
func closeStore() error {
	if store != nil {
		return store.Close()
	}
	return nil
}
