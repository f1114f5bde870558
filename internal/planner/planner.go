// ABOUTME: Meal plan generation via round-robin recipe selection against macro targets
// ABOUTME: Days falling under 80% of the calorie target are scaled up proportionally
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

const (
	// CalorieFloor is the minimum daily calorie total scale-up will target
	CalorieFloor = 1200.0

	// scaleThreshold is the fraction of the target below which a day is scaled up
	scaleThreshold = 0.8

	maxMealsPerDay = 4
)

var mealTypeOrder = []models.MealType{
	models.MealBreakfast,
	models.MealLunch,
	models.MealDinner,
	models.MealSnack,
}

// Planner generates meal plans from a recipe corpus
type Planner struct {
	docs           []models.RecipeDocument
	calorieFloor   float64
	scaleThreshold float64
}

// New creates a planner over the given corpus documents
func New(docs []models.RecipeDocument) *Planner {
	return &Planner{
		docs:           docs,
		calorieFloor:   CalorieFloor,
		scaleThreshold: scaleThreshold,
	}
}

// SetLimits overrides the calorie floor and scale-up threshold.
// Non-positive values keep the current setting.
func (p *Planner) SetLimits(calorieFloor, threshold float64) {
	if calorieFloor > 0 {
		p.calorieFloor = calorieFloor
	}
	if threshold > 0 {
		p.scaleThreshold = threshold
	}
}

// Generate builds a plan of exactly days consecutive PlanDays starting at
// startDate, each with exactly targets.MealsPerDay meals. Recipes are
// selected round-robin from the corpus filtered by diet tags and
// ingredient exclusions; when filtering eliminates every recipe the full
// corpus is used so the plan shape never depends on filter results.
func (p *Planner) Generate(targets models.MacroTargets, startDate time.Time, days int) ([]models.PlanDay, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days must be at least 1, got %d", nutrition.ErrValidation, days)
	}
	if len(p.docs) == 0 {
		return nil, fmt.Errorf("%w: recipe corpus is empty", nutrition.ErrValidation)
	}

	mealsPerDay := targets.MealsPerDay
	if mealsPerDay < 1 {
		mealsPerDay = 3
	}
	if mealsPerDay > maxMealsPerDay {
		mealsPerDay = maxMealsPerDay
	}

	pool := filterCorpus(p.docs, targets.DietTags, targets.Exclusions)
	if len(pool) == 0 {
		pool = p.docs
	}

	plan := make([]models.PlanDay, 0, days)
	cursor := 0
	for d := 0; d < days; d++ {
		day := models.PlanDay{
			Date:  startDate.AddDate(0, 0, d),
			Meals: make([]models.PlanMeal, 0, mealsPerDay),
		}

		for m := 0; m < mealsPerDay; m++ {
			doc := pool[cursor%len(pool)]
			cursor++

			// One item per meal carrying the recipe's per-serving
			// macros; day totals must reflect one serving per meal,
			// not the ingredient count.
			day.Meals = append(day.Meals, models.PlanMeal{
				Name:     doc.Title,
				MealType: mealTypeOrder[m],
				Items: []models.MealItem{{
					Name:     doc.Title,
					Quantity: 1,
					Unit:     "serving",
					Calories: doc.PerServing.Calories,
					ProteinG: doc.PerServing.ProteinG,
					CarbG:    doc.PerServing.CarbG,
					FatG:     doc.PerServing.FatG,
				}},
				Notes: strings.Join(doc.Tags, ", "),
			})
		}

		p.scaleUpDay(&day, targets.Calories)
		plan = append(plan, day)
	}

	return plan, nil
}

// filterCorpus keeps recipes matching any requested diet tag and none
// of the excluded ingredients. Matching is case-insensitive substring.
func filterCorpus(docs []models.RecipeDocument, dietTags, exclusions []string) []models.RecipeDocument {
	var out []models.RecipeDocument
	for _, doc := range docs {
		if !hasAnyTag(doc.Tags, dietTags) {
			continue
		}
		if hasExcludedIngredient(doc.Ingredients, exclusions) {
			continue
		}
		out = append(out, doc)
	}
	return out
}

// hasAnyTag reports whether any requested diet tag is a case-insensitive
// substring of any recipe tag. An empty request matches everything.
func hasAnyTag(tags, wanted []string) bool {
	if len(wanted) == 0 {
		return true
	}
	for _, want := range wanted {
		needle := strings.ToLower(strings.TrimSpace(want))
		if needle == "" {
			return true
		}
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

func hasExcludedIngredient(ingredients, exclusions []string) bool {
	for _, excluded := range exclusions {
		needle := strings.ToLower(strings.TrimSpace(excluded))
		if needle == "" {
			continue
		}
		for _, ingredient := range ingredients {
			if strings.Contains(strings.ToLower(ingredient), needle) {
				return true
			}
		}
	}
	return false
}

// scaleUpDay proportionally scales every item in the day when its total
// calories fall below the threshold fraction of the target. The scale-up
// aims for the target or the calorie safety floor, whichever is higher,
// and marks every scaled item as estimated.
func (p *Planner) scaleUpDay(day *models.PlanDay, targetCalories float64) {
	if targetCalories <= 0 {
		return
	}

	total := day.Totals()
	if total.Calories >= targetCalories*p.scaleThreshold {
		return
	}

	goal := targetCalories
	if goal < p.calorieFloor {
		goal = p.calorieFloor
	}
	current := total.Calories
	if current < 1 {
		current = 1
	}
	scale := goal / current

	for mi := range day.Meals {
		for ii := range day.Meals[mi].Items {
			item := &day.Meals[mi].Items[ii]
			item.Quantity *= scale
			item.Calories *= scale
			item.ProteinG *= scale
			item.CarbG *= scale
			item.FatG *= scale
			item.Estimated = true
		}
	}
}
