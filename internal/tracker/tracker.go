// ABOUTME: Orchestration facade composing parsing, lookup, retrieval, planning, and storage
// ABOUTME: CLI commands and MCP handlers both operate through this service
package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/harper/nutritrack/internal/llm"
	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
	"github.com/harper/nutritrack/internal/planner"
	"github.com/harper/nutritrack/internal/rag"
	"github.com/harper/nutritrack/internal/recipes"
	"github.com/harper/nutritrack/internal/storage/sqlite"
)

// Tracker wires the nutrition engine together. All dependencies are
// injected, so tests can run it against in-memory stores and the stub
// text generator.
type Tracker struct {
	ref       *nutrition.Reference
	parser    *nutrition.Parser
	index     *rag.Index
	meals     *sqlite.MealStore
	plans     *sqlite.PlanStore
	generator llm.Generator

	topK           int
	calorieFloor   float64
	scaleThreshold float64
}

// New creates a tracker from its collaborators. generator may be nil
// when no narrative text is needed.
func New(ref *nutrition.Reference, index *rag.Index, db *sqlite.DB, generator llm.Generator) *Tracker {
	return &Tracker{
		ref:       ref,
		parser:    nutrition.NewParser(ref),
		index:     index,
		meals:     sqlite.NewMealStore(db),
		plans:     sqlite.NewPlanStore(db),
		generator: generator,
	}
}

// SetRetrievalTopK overrides the default result count for recipe search
func (t *Tracker) SetRetrievalTopK(k int) {
	if k > 0 {
		t.topK = k
	}
}

// SetPlannerLimits overrides the calorie floor and scale-up threshold
// used during plan generation. Non-positive values keep the defaults.
func (t *Tracker) SetPlannerLimits(calorieFloor, threshold float64) {
	t.calorieFloor = calorieFloor
	t.scaleThreshold = threshold
}

// Reference exposes the food reference store
func (t *Tracker) Reference() *nutrition.Reference {
	return t.ref
}

// Index exposes the retrieval index
func (t *Tracker) Index() *rag.Index {
	return t.index
}

// LogMeal parses a free-text meal description and persists the result.
// Unmatched food names are reported alongside the logged meal rather
// than failing the log.
func (t *Tracker) LogMeal(description string, mealType models.MealType, date time.Time) (*models.Meal, []string, error) {
	if !models.ValidMealType(mealType) {
		return nil, nil, fmt.Errorf("%w: unknown meal type %q", nutrition.ErrValidation, mealType)
	}

	parsed, err := t.parser.Parse(description)
	if err != nil {
		return nil, nil, err
	}

	meal := &models.Meal{
		Description: description,
		MealType:    mealType,
		MealDate:    date,
		Items:       parsed.Items,
	}
	if err := t.meals.LogMeal(meal); err != nil {
		return nil, nil, fmt.Errorf("failed to log meal: %w", err)
	}
	return meal, parsed.Unmatched, nil
}

// MealsForDate returns the meals logged on a date
func (t *Tracker) MealsForDate(date time.Time) ([]models.Meal, error) {
	return t.meals.MealsForDate(date)
}

// DailyTotals returns rounded macro totals and meal count for a date
func (t *Tracker) DailyTotals(date time.Time) (models.Macros, int, error) {
	return t.meals.DailyTotals(date)
}

// WeeklySummary returns per-day totals for the trailing 7 days
func (t *Tracker) WeeklySummary(end time.Time) ([]sqlite.DaySummary, error) {
	return t.meals.WeeklySummary(end)
}

// DeleteMeal removes a logged meal by ID
func (t *Tracker) DeleteMeal(mealID string) (bool, error) {
	return t.meals.Delete(mealID)
}

// SearchRecipes retrieves the top-k recipes for a query
func (t *Tracker) SearchRecipes(query string, k int) ([]rag.Result, error) {
	if k <= 0 && t.topK > 0 {
		k = t.topK
	}
	return t.index.Retrieve(query, k)
}

// ResolveRecipe finds a single recipe for the query via the corpus
// loaded through the retrieval index.
func (t *Tracker) ResolveRecipe(query string) (models.RecipeDocument, error) {
	docs, err := t.index.Documents()
	if err != nil {
		return models.RecipeDocument{}, err
	}
	return recipes.NewResolver(docs).Resolve(query)
}

// SuggestRecipes returns up to limit loosely matching recipes
func (t *Tracker) SuggestRecipes(query string, limit int) ([]models.RecipeDocument, error) {
	docs, err := t.index.Documents()
	if err != nil {
		return nil, err
	}
	return recipes.NewResolver(docs).Suggest(query, limit), nil
}

// CookRecipe resolves a recipe and scales it to the requested servings
func (t *Tracker) CookRecipe(query string, servings int) (*recipes.ScaledRecipe, error) {
	doc, err := t.ResolveRecipe(query)
	if err != nil {
		return nil, err
	}
	return recipes.ScaleRecipe(doc, servings)
}

// EstimateIngredients resolves a recipe and approximates gram amounts
// for its reference-matched ingredients from the per-serving calories.
func (t *Tracker) EstimateIngredients(query string, servings int) ([]nutrition.WeightEstimate, error) {
	doc, err := t.ResolveRecipe(query)
	if err != nil {
		return nil, err
	}
	if servings < 1 {
		servings = doc.Servings
	}
	return t.ref.EstimateIngredientGrams(doc.Ingredients, doc.PerServing.Calories, servings)
}

// GeneratePlan builds and persists a meal plan starting at startDate
func (t *Tracker) GeneratePlan(targets models.MacroTargets, startDate time.Time, days int) ([]models.PlanDay, error) {
	docs, err := t.index.Documents()
	if err != nil {
		return nil, err
	}

	p := planner.New(docs)
	p.SetLimits(t.calorieFloor, t.scaleThreshold)
	plan, err := p.Generate(targets, startDate, days)
	if err != nil {
		return nil, err
	}
	if err := t.plans.SavePlan(plan); err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}
	return plan, nil
}

// PlannedRange loads previously generated plan days between start and end
func (t *Tracker) PlannedRange(start, end time.Time) ([]models.PlanDay, error) {
	return t.plans.PlannedRange(start, end)
}

// GroceryList builds a grocery list from the planned days in a range.
// Planned meals are expanded into their recipe ingredients before
// aggregation so the list names foods to buy, not meal titles.
func (t *Tracker) GroceryList(start, end time.Time) ([]models.GroceryItem, error) {
	days, err := t.plans.PlannedRange(start, end)
	if err != nil {
		return nil, err
	}

	docs, err := t.index.Documents()
	if err != nil {
		return nil, err
	}
	byTitle := make(map[string][]string, len(docs))
	for _, doc := range docs {
		byTitle[strings.ToLower(doc.Title)] = doc.Ingredients
	}

	return planner.BuildGroceryList(planner.ExpandIngredients(days, byTitle)), nil
}

// Narrate asks the text generator for narrative around computed facts.
// Returns an empty string without error when no generator is wired or
// it is unavailable; narrative is always optional.
func (t *Tracker) Narrate(ctx context.Context, prompt string) string {
	if t.generator == nil || !t.generator.Available() {
		return ""
	}
	text, err := t.generator.GenerateText(ctx, prompt)
	if err != nil {
		return ""
	}
	return text
}
