// Shared output helpers for the travnik CLI.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CostaWebin/travnik/pkg/types"
)

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printPlantLine(p *types.Plant) {
	line := fmt.Sprintf("%d  %s", p.ID, p.Name)
	if p.LatinName != "" {
		line += fmt.Sprintf(" (%s)", p.LatinName)
	}
	if p.Description != "" {
		line += "  " + p.Description
	}
	fmt.Println(line)
}

func printDiseaseLine(d *types.Disease) {
	line := fmt.Sprintf("%d  %s [%s]", d.ID, d.Name, d.Category)
	if d.Description != "" {
		line += "  " + d.Description
	}
	fmt.Println(line)
}

func printRemedy(recipe, dosage, notes string) {
	if recipe != "" {
		fmt.Println("    рецепт:", recipe)
	}
	if dosage != "" {
		fmt.Println("    приём:", dosage)
	}
	if notes != "" {
		fmt.Println("    заметки:", notes)
	}
}

func categoryList() string {
	return strings.Join(types.Categories(), ", ")
}
