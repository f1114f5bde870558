// ABOUTME: Ingredient gram estimation from per-serving calorie budgets
// ABOUTME: Distributes calories evenly across reference-matched ingredients
package nutrition

import (
	"fmt"
	"math"
)

// WeightEstimate approximates the gram amount of one recipe ingredient
type WeightEstimate struct {
	Ingredient         string  `json:"ingredient"`
	GramsPerServing    float64 `json:"grams_per_serving"`
	GramsTotal         float64 `json:"grams_total"`
	CaloriesPerServing float64 `json:"calories_per_serving"`
	ProteinPerServing  float64 `json:"protein_per_serving"`
	CarbPerServing     float64 `json:"carb_per_serving"`
	FatPerServing      float64 `json:"fat_per_serving"`
}

// EstimateIngredientGrams approximates grams per ingredient by splitting
// the per-serving calories evenly across the ingredients that match the
// reference store and converting each share through the ingredient's
// calories-per-gram. Unmatched ingredients are skipped; ErrNoMatch is
// returned only when nothing matches at all.
func (r *Reference) EstimateIngredientGrams(ingredients []string, caloriesPerServing float64, servings int) ([]WeightEstimate, error) {
	type match struct {
		name   string
		macros FoodEntry
	}

	var matches []match
	for _, ingredient := range ingredients {
		canonical, macros, err := r.Lookup(ingredient)
		if err != nil {
			continue
		}
		matches = append(matches, match{name: TitleCase(canonical), macros: FoodEntry{Name: canonical, Macros: macros}})
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no ingredients found in the nutrition reference", ErrNoMatch)
	}

	if servings < 1 {
		servings = 1
	}
	caloriesPerServing = math.Max(1.0, caloriesPerServing)
	calorieShare := caloriesPerServing / float64(len(matches))

	estimates := make([]WeightEstimate, 0, len(matches))
	for _, m := range matches {
		calPerGram := m.macros.Macros.Calories / ReferenceBasisGrams
		gramsPerServing := 0.0
		if calPerGram > 0 {
			gramsPerServing = calorieShare / calPerGram
		}

		estimates = append(estimates, WeightEstimate{
			Ingredient:         m.name,
			GramsPerServing:    round1(gramsPerServing),
			GramsTotal:         round1(gramsPerServing * float64(servings)),
			CaloriesPerServing: round1(calorieShare),
			ProteinPerServing:  round1(m.macros.Macros.ProteinG / ReferenceBasisGrams * gramsPerServing),
			CarbPerServing:     round1(m.macros.Macros.CarbG / ReferenceBasisGrams * gramsPerServing),
			FatPerServing:      round1(m.macros.Macros.FatG / ReferenceBasisGrams * gramsPerServing),
		})
	}

	return estimates, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
