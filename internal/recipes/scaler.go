// ABOUTME: Recipe scaling to a requested serving count plus cooking step generation
// ABOUTME: Steps are split from instruction text on periods and numbered from 1
package recipes

import (
	"fmt"
	"strings"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

// stepMinutes is the fixed per-step duration estimate
const stepMinutes = 5

var stepTips = []string{"Read the full step before starting", "Prep ingredients in advance"}

var stepSubstitutions = []string{"Swap in a similar ingredient you have on hand"}

// ScaledRecipe is a recipe adjusted to a requested serving count.
// Macros holds the per-serving macros multiplied by the serving scale;
// Items carries one entry per ingredient with the same scaled macros.
type ScaledRecipe struct {
	Recipe   models.RecipeDocument `json:"recipe"`
	Servings int                   `json:"servings"`
	Scale    float64               `json:"scale"`
	Macros   models.Macros         `json:"macros"`
	Items    []models.MealItem     `json:"items"`
	Steps    []models.Step         `json:"steps"`
}

// ScaleRecipe scales doc to the requested serving count. The scale
// factor is servings divided by the recipe's base servings (minimum 1);
// all per-serving macros and ingredient quantities are multiplied by it.
// Ingredient items are always estimated since corpus macros are
// per-serving approximations, not gram-based lookups.
func ScaleRecipe(doc models.RecipeDocument, servings int) (*ScaledRecipe, error) {
	if servings < 1 {
		return nil, fmt.Errorf("%w: servings must be at least 1, got %d", nutrition.ErrValidation, servings)
	}

	base := doc.Servings
	if base < 1 {
		base = 1
	}
	scale := float64(servings) / float64(base)

	scaled := doc.PerServing.Scale(scale)

	items := make([]models.MealItem, 0, len(doc.Ingredients))
	for _, ingredient := range doc.Ingredients {
		items = append(items, models.MealItem{
			Name:      nutrition.TitleCase(ingredient),
			Quantity:  scale,
			Unit:      "serving",
			Calories:  scaled.Calories,
			ProteinG:  scaled.ProteinG,
			CarbG:     scaled.CarbG,
			FatG:      scaled.FatG,
			Estimated: true,
		})
	}

	return &ScaledRecipe{
		Recipe:   doc,
		Servings: servings,
		Scale:    scale,
		Macros:   scaled.Round(),
		Items:    items,
		Steps:    BuildSteps(doc.StepsText),
	}, nil
}

// BuildSteps splits instruction text on periods into numbered cooking
// steps. Empty fragments are discarded; numbering starts at 1. Duration,
// tips, and substitutions are static placeholders rather than derived
// from the instruction content.
func BuildSteps(stepsText string) []models.Step {
	var steps []models.Step
	for _, fragment := range strings.Split(stepsText, ".") {
		instruction := strings.TrimSpace(fragment)
		if instruction == "" {
			continue
		}
		steps = append(steps, models.Step{
			Idx:              len(steps) + 1,
			Instruction:      instruction,
			EstimatedMinutes: stepMinutes,
			Tips:             stepTips,
			Substitutions:    stepSubstitutions,
		})
	}
	return steps
}
