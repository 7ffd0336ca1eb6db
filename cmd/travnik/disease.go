// Disease detail command for the travnik CLI.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var diseaseCmd = &cobra.Command{
	Use:   "disease <id>",
	Short: "Show a disease and the plants used for it",
	Long: `Disease shows one disease by id together with every plant linked
to it and the recipe recorded on each link.

Example:
  travnik disease 1`,
	Args: cobra.ExactArgs(1),
	RunE: runDisease,
}

func runDisease(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid disease id %q", args[0])
	}

	disease, err := store.GetDiseaseByID(id)
	if err != nil {
		return fmt.Errorf("get disease: %w", err)
	}
	if disease == nil {
		return fmt.Errorf("disease %d not found", id)
	}

	plants, err := store.GetPlantsForDisease(id)
	if err != nil {
		return fmt.Errorf("get plants: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"disease": disease,
			"plants":  plants,
		})
	}

	printDiseaseLine(disease)
	for _, p := range plants {
		if p.LatinName != "" {
			fmt.Printf("  %s (%s)\n", p.Name, p.LatinName)
		} else {
			fmt.Printf("  %s\n", p.Name)
		}
		printRemedy(p.Recipe, p.Dosage, p.Notes)
	}
	return nil
}
