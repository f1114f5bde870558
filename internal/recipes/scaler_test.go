// ABOUTME: Tests for recipe scaling and cooking step generation
// ABOUTME: Includes the serving scale round-trip law
package recipes

import (
	"errors"
	"math"
	"testing"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

func scalerDoc() models.RecipeDocument {
	return models.RecipeDocument{
		ID:          "recipe-1",
		Title:       "Chicken Stir Fry",
		Ingredients: []string{"chicken breast", "broccoli", "rice"},
		StepsText:   "Cook the rice. Sear the chicken. Toss with broccoli.",
		Servings:    2,
		PerServing: models.Macros{
			Calories: 540,
			ProteinG: 42,
			CarbG:    55,
			FatG:     14,
		},
	}
}

func TestScaleRecipe(t *testing.T) {
	scaled, err := ScaleRecipe(scalerDoc(), 4)
	if err != nil {
		t.Fatalf("ScaleRecipe() error = %v", err)
	}

	if scaled.Scale != 2.0 {
		t.Errorf("scale = %v, want 2.0 (4 servings over base 2)", scaled.Scale)
	}
	if scaled.Macros.Calories != 1080 {
		t.Errorf("calories = %v, want 1080", scaled.Macros.Calories)
	}
	if len(scaled.Items) != 3 {
		t.Fatalf("items = %d, want one per ingredient", len(scaled.Items))
	}
	for _, item := range scaled.Items {
		if item.Quantity != 2.0 {
			t.Errorf("item %s quantity = %v, want 2.0", item.Name, item.Quantity)
		}
		if !item.Estimated {
			t.Errorf("item %s should be estimated", item.Name)
		}
	}
	if scaled.Items[0].Name != "Chicken Breast" {
		t.Errorf("item name = %q, want title case", scaled.Items[0].Name)
	}
}

func TestScaleRecipeZeroBaseServings(t *testing.T) {
	doc := scalerDoc()
	doc.Servings = 0

	scaled, err := ScaleRecipe(doc, 3)
	if err != nil {
		t.Fatalf("ScaleRecipe() error = %v", err)
	}
	// Base servings clamp to 1.
	if scaled.Scale != 3.0 {
		t.Errorf("scale = %v, want 3.0", scaled.Scale)
	}
}

func TestScaleRecipeInvalidServings(t *testing.T) {
	if _, err := ScaleRecipe(scalerDoc(), 0); !errors.Is(err, nutrition.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
	if _, err := ScaleRecipe(scalerDoc(), -2); !errors.Is(err, nutrition.ErrValidation) {
		t.Errorf("error = %v, want ErrValidation", err)
	}
}

func TestScaleRoundTrip(t *testing.T) {
	doc := scalerDoc()
	const n = 5

	up, err := ScaleRecipe(doc, n)
	if err != nil {
		t.Fatalf("ScaleRecipe(n) error = %v", err)
	}
	single, err := ScaleRecipe(doc, 1)
	if err != nil {
		t.Fatalf("ScaleRecipe(1) error = %v", err)
	}

	// Scaling to n servings must equal scaling to 1 then multiplying by n.
	back := single.Macros.Scale(n)
	for name, pair := range map[string][2]float64{
		"calories":  {up.Macros.Calories, back.Calories},
		"protein_g": {up.Macros.ProteinG, back.ProteinG},
		"carb_g":    {up.Macros.CarbG, back.CarbG},
		"fat_g":     {up.Macros.FatG, back.FatG},
	} {
		if math.Abs(pair[0]-pair[1]) > 1e-6 {
			t.Errorf("%s round trip: %v != %v", name, pair[0], pair[1])
		}
	}
}

func TestBuildSteps(t *testing.T) {
	steps := BuildSteps("Cook the rice. Sear the chicken.  . Toss with broccoli.")

	if len(steps) != 3 {
		t.Fatalf("steps = %d, want 3 (empty fragments dropped)", len(steps))
	}
	for i, step := range steps {
		if step.Idx != i+1 {
			t.Errorf("step %d idx = %d, want %d", i, step.Idx, i+1)
		}
		if step.EstimatedMinutes != stepMinutes {
			t.Errorf("step %d minutes = %d, want %d", i, step.EstimatedMinutes, stepMinutes)
		}
		if len(step.Tips) == 0 || len(step.Substitutions) == 0 {
			t.Errorf("step %d missing tips or substitutions", i)
		}
	}
	if steps[1].Instruction != "Sear the chicken" {
		t.Errorf("step 2 instruction = %q", steps[1].Instruction)
	}

	if got := BuildSteps(""); got != nil {
		t.Errorf("BuildSteps(\"\") = %v, want nil", got)
	}
}
