// Seed command for the travnik CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the catalog if it is empty",
	Long: `Seed populates an empty catalog from the configured snapshot, or
from the built-in reference dataset when no snapshot is available. A
populated catalog is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Seed(storeConfig.Snapshot); err != nil {
			return fmt.Errorf("seed store: %w", err)
		}

		plants, err := store.GetAllPlants()
		if err != nil {
			return fmt.Errorf("list plants: %w", err)
		}
		diseases, err := store.GetAllDiseases()
		if err != nil {
			return fmt.Errorf("list diseases: %w", err)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"plants":   len(plants),
				"diseases": len(diseases),
			})
		}
		fmt.Printf("Catalog holds %d plants and %d diseases\n", len(plants), len(diseases))
		return nil
	},
}
