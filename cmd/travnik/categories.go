// Categories command for the travnik CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CostaWebin/travnik/pkg/types"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List disease categories with their record counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts := make(map[string]int, len(types.Categories()))
		for _, c := range types.Categories() {
			diseases, err := store.GetDiseasesByCategory(c)
			if err != nil {
				return fmt.Errorf("count category %s: %w", c, err)
			}
			counts[c] = len(diseases)
		}

		if flagJSON {
			return printJSON(counts)
		}
		for _, c := range types.Categories() {
			fmt.Printf("%-16s %d\n", c, counts[c])
		}
		return nil
	},
}
