// Search command for the travnik CLI.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CostaWebin/travnik/pkg/types"
)

var (
	flagDiseases bool
	flagCategory string
	flagFuzzy    bool
	flagDistance int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search plants or diseases by name",
	Long: `Search matches the query as a case-insensitive substring of record
names. With --fuzzy, names within the given edit distance of the query also
match, ranked by similarity.

Plants are searched by default; --diseases switches to diseases, where
--category restricts results to one category. An empty query with a
category lists that category.

Example:
  travnik search ромашка
  travnik search ромошка --fuzzy
  travnik search --diseases простуда
  travnik search --diseases --category Respiratory`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&flagDiseases, "diseases", false, "search diseases instead of plants")
	searchCmd.Flags().StringVar(&flagCategory, "category", types.CategoryAll, "disease category filter (with --diseases)")
	searchCmd.Flags().BoolVar(&flagFuzzy, "fuzzy", false, "match names within an edit distance of the query")
	searchCmd.Flags().IntVar(&flagDistance, "distance", types.DefaultMaxDistance, "maximum edit distance for --fuzzy")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	if flagCategory != types.CategoryAll && !types.ValidCategory(flagCategory) {
		return fmt.Errorf("unknown category %q (valid: %s)", flagCategory, categoryList())
	}

	if flagFuzzy {
		return runFuzzySearch(query)
	}
	if flagDiseases {
		diseases, err := store.SearchDiseasesByName(query, flagCategory)
		if err != nil {
			return fmt.Errorf("search diseases: %w", err)
		}
		if flagJSON {
			return printJSON(diseases)
		}
		for _, d := range diseases {
			printDiseaseLine(d)
		}
		return nil
	}

	plants, err := store.SearchPlantsByName(query)
	if err != nil {
		return fmt.Errorf("search plants: %w", err)
	}
	if flagJSON {
		return printJSON(plants)
	}
	for _, p := range plants {
		printPlantLine(p)
	}
	return nil
}

func runFuzzySearch(query string) error {
	collection := types.PlantsCollection
	if flagDiseases {
		collection = types.DiseasesCollection
	}

	results, err := store.FuzzySearch(query, collection, flagDistance)
	if err != nil {
		return fmt.Errorf("fuzzy search: %w", err)
	}

	// Fuzzy results are ranked; the category filter applies afterwards.
	if flagDiseases && flagCategory != types.CategoryAll {
		filtered := results[:0]
		for _, r := range results {
			if d, ok := r.(*types.Disease); ok && strings.EqualFold(d.Category, flagCategory) {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	if flagJSON {
		return printJSON(results)
	}
	for _, r := range results {
		switch v := r.(type) {
		case *types.Plant:
			printPlantLine(v)
		case *types.Disease:
			printDiseaseLine(v)
		}
	}
	return nil
}
