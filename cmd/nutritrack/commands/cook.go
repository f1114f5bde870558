// ABOUTME: CLI command for cooking guidance
// ABOUTME: Resolves a recipe, scales it to servings, and prints numbered steps
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/nutritrack/internal/nutrition"
	"github.com/harper/nutritrack/internal/recipes"
)

var (
	cookServings int
	cookGrams    bool
)

// NewCookCmd creates the cook command
func NewCookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cook [query]",
		Short: "Get scaled cooking steps for a recipe",
		Long: `Resolve a recipe by title or ingredient and print its cooking steps
with ingredients and macros scaled to the requested servings.

Examples:
  nutritrack cook "chicken stir fry"
  nutritrack cook --servings 4 "lentil curry"
  nutritrack cook --grams "greek yogurt parfait"`,
		Args: cobra.ExactArgs(1),
		RunE: runCook,
	}

	cmd.Flags().IntVar(&cookServings, "servings", 0, "Serving count (default: recipe base servings)")
	cmd.Flags().BoolVar(&cookGrams, "grams", false, "Show estimated gram amounts for matched ingredients")

	return cmd
}

func runCook(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := openTracker()
	if err != nil {
		return err
	}
	defer cleanup()

	query := args[0]

	servings := cookServings
	if servings == 0 {
		doc, rerr := svc.ResolveRecipe(query)
		if rerr == nil {
			servings = doc.Servings
		} else {
			servings = 1
		}
	}

	scaled, err := svc.CookRecipe(query, servings)
	if err != nil {
		if errors.Is(err, recipes.ErrRecipeNotFound) {
			suggestions, serr := svc.SuggestRecipes(query, 3)
			if serr == nil && len(suggestions) > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No recipe matching %q. Did you mean:\n", query)
				for _, doc := range suggestions {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", doc.Title)
				}
				return nil
			}
		}
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s, %d servings (%s)\n\n", scaled.Recipe.Title, scaled.Servings, formatMacros(scaled.Macros))

	_, _ = fmt.Fprintln(out, "Ingredients:")
	for _, item := range scaled.Items {
		_, _ = fmt.Fprintf(out, "  - %s (%.2g %s)\n", item.Name, item.Quantity, item.Unit)
	}

	if cookGrams {
		estimates, eerr := svc.EstimateIngredients(query, servings)
		if eerr != nil {
			if errors.Is(eerr, nutrition.ErrNoMatch) {
				_, _ = fmt.Fprintln(out, "\nNo ingredients matched the nutrition reference; no gram estimates")
			} else {
				return eerr
			}
		} else {
			_, _ = fmt.Fprintln(out, "\nEstimated weights (per serving):")
			for _, est := range estimates {
				_, _ = fmt.Fprintf(out, "  %-24s %.1fg (%.1fg total)\n", est.Ingredient, est.GramsPerServing, est.GramsTotal)
			}
		}
	}

	_, _ = fmt.Fprintln(out, "\nSteps:")
	for _, step := range scaled.Steps {
		_, _ = fmt.Fprintf(out, "  %d. %s (~%d min)\n", step.Idx, step.Instruction, step.EstimatedMinutes)
		if verbose {
			for _, tip := range step.Tips {
				_, _ = fmt.Fprintf(out, "     tip: %s\n", tip)
			}
		}
	}
	return nil
}
