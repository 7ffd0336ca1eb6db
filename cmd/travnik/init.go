// Init command for the travnik CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the catalog store",
	Long: `Init creates the database, applies schema upgrades, and seeds the
catalog when it is empty. Seeding uses the snapshot named by --snapshot or
the config file, falling back to the built-in reference dataset.

The store is opened before every command, so init only confirms the result
and reports what the catalog holds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plants, err := store.GetAllPlants()
		if err != nil {
			return fmt.Errorf("list plants: %w", err)
		}
		diseases, err := store.GetAllDiseases()
		if err != nil {
			return fmt.Errorf("list diseases: %w", err)
		}
		meta, err := store.GetMetadata()
		if err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"dataDir":  storeConfig.DataDir,
				"plants":   len(plants),
				"diseases": len(diseases),
				"metadata": meta,
			})
		}

		fmt.Printf("Catalog initialized in %s: %d plants, %d diseases\n",
			storeConfig.DataDir, len(plants), len(diseases))
		if meta != nil {
			fmt.Printf("Dataset %s (%s), created %s\n",
				meta.Version, meta.Source, meta.CreatedAt.Format("2006-01-02"))
			if meta.Disclaimer != "" {
				fmt.Println(meta.Disclaimer)
			}
		}
		return nil
	},
}
