// Plant detail command for the travnik CLI.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CostaWebin/travnik/pkg/types"
)

var plantCmd = &cobra.Command{
	Use:   "plant <id|name>",
	Short: "Show a plant and its remedies",
	Long: `Plant shows one plant together with every disease it is linked to
and the recipe recorded on each link. The argument is a numeric id or a
name; a name must match exactly one plant.

Example:
  travnik plant 1
  travnik plant ромашка`,
	Args: cobra.ExactArgs(1),
	RunE: runPlant,
}

func runPlant(cmd *cobra.Command, args []string) error {
	plant, err := resolvePlant(args[0])
	if err != nil {
		return err
	}

	remedies, err := store.GetDiseasesForPlant(plant.ID)
	if err != nil {
		return fmt.Errorf("get remedies: %w", err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"plant":    plant,
			"remedies": remedies,
		})
	}

	printPlantLine(plant)
	if plant.Properties != "" {
		fmt.Println("  свойства:", plant.Properties)
	}
	if len(plant.Uses) > 0 {
		fmt.Println("  применение:", strings.Join(plant.Uses, ", "))
	}
	if plant.Toxicity != "" {
		fmt.Println("  противопоказания:", plant.Toxicity)
	}
	for _, r := range remedies {
		fmt.Printf("  %s [%s]\n", r.Name, r.Category)
		printRemedy(r.Recipe, r.Dosage, r.Notes)
	}
	return nil
}

// resolvePlant finds a plant by numeric id, or by name when the argument
// is not a number. A name matching several plants is ambiguous.
func resolvePlant(arg string) (*types.Plant, error) {
	if id, err := strconv.ParseInt(arg, 10, 64); err == nil {
		plant, err := store.GetPlantByID(id)
		if err != nil {
			return nil, fmt.Errorf("get plant: %w", err)
		}
		if plant == nil {
			return nil, fmt.Errorf("plant %d not found", id)
		}
		return plant, nil
	}

	matches, err := store.SearchPlantsByName(arg)
	if err != nil {
		return nil, fmt.Errorf("search plants: %w", err)
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("plant %q not found", arg)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, p := range matches {
			names[i] = p.Name
		}
		return nil, fmt.Errorf("plant %q is ambiguous: %s", arg, strings.Join(names, ", "))
	}
}
