// ABOUTME: CLI command to search the recipe corpus
// ABOUTME: Ranks recipes by similarity score via the retrieval index
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var recipesMax int

// NewRecipesCmd creates the recipes command
func NewRecipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipes [query]",
		Short: "Search the recipe corpus",
		Long: `Search the recipe corpus, ranking recipes by similarity to the query.

Examples:
  nutritrack recipes "quick chicken dinner"
  nutritrack recipes --max 3 "vegetarian breakfast"`,
		Args: cobra.ExactArgs(1),
		RunE: runRecipes,
	}

	cmd.Flags().IntVar(&recipesMax, "max", 6, "Maximum number of results")

	return cmd
}

func runRecipes(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := svc.SearchRecipes(args[0], recipesMax)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(results) == 0 {
		_, _ = fmt.Fprintln(out, "No recipes found")
		return nil
	}

	for i, r := range results {
		_, _ = fmt.Fprintf(out, "%d. %s (score %.3f, %d servings)\n",
			i+1, r.Document.Title, r.Score, r.Document.Servings)
		if verbose {
			_, _ = fmt.Fprintf(out, "   per serving: %s\n", formatMacros(r.Document.PerServing))
		}
	}
	return nil
}
