// ABOUTME: MCP tool handler implementations for the nutrition server
// ABOUTME: Handlers validate arguments, call the tracker, and return JSON results
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
	"github.com/harper/nutritrack/internal/recipes"
	"github.com/harper/nutritrack/internal/tracker"
)

// dateLayout is the wire format for dates in tool arguments
const dateLayout = "2006-01-02"

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	tracker *tracker.Tracker
}

// parseDate reads an optional YYYY-MM-DD argument, defaulting to today
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, raw)
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// LogMeal handles the log_meal tool
func (h *Handlers) LogMeal(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	description, err := request.RequireString("description")
	if err != nil {
		return mcp.NewToolResultError("description argument is required and must be a string"), nil
	}
	mealType, err := request.RequireString("meal_type")
	if err != nil {
		return mcp.NewToolResultError("meal_type argument is required and must be a string"), nil
	}
	date, err := parseDate(request.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}

	meal, unmatched, err := h.tracker.LogMeal(description, models.MealType(mealType), date)
	if err != nil {
		switch {
		case errors.Is(err, nutrition.ErrNoItemsParsed):
			return mcp.NewToolResultError("no food items could be parsed from the description"), nil
		case errors.Is(err, nutrition.ErrNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("no foods matched: %v", err)), nil
		case errors.Is(err, nutrition.ErrValidation):
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to log meal: %v", err)), nil
	}

	narrative := h.tracker.Narrate(ctx, fmt.Sprintf(
		"The user logged %q as %s totalling %.0f calories. Write one short encouraging sentence.",
		description, mealType, meal.Totals().Calories))

	return jsonResult(map[string]interface{}{
		"meal":      meal,
		"totals":    meal.Totals(),
		"unmatched": unmatched,
		"narrative": narrative,
	})
}

// DailyTotals handles the daily_totals tool
func (h *Handlers) DailyTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := parseDate(request.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date: %v", err)), nil
	}

	totals, count, err := h.tracker.DailyTotals(date)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to compute totals: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"date":       date.Format(dateLayout),
		"meal_count": count,
		"totals":     totals,
	})
}

// AddFood handles the add_food tool
func (h *Handlers) AddFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}
	calories, err := request.RequireFloat("calories")
	if err != nil {
		return mcp.NewToolResultError("calories argument is required and must be a number"), nil
	}

	macros := models.Macros{
		Calories: calories,
		ProteinG: request.GetFloat("protein_g", 0),
		CarbG:    request.GetFloat("carb_g", 0),
		FatG:     request.GetFloat("fat_g", 0),
	}
	referenceGrams := request.GetFloat("reference_grams", 100)

	if err := h.tracker.Reference().Add(name, macros, referenceGrams); err != nil {
		if errors.Is(err, nutrition.ErrValidation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to add food: %v", err)), nil
	}

	canonical, per100, err := h.tracker.Reference().Lookup(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("food added but lookup failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"name":     canonical,
		"per_100g": per100,
	})
}

// LookupFood handles the lookup_food tool
func (h *Handlers) LookupFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name argument is required and must be a string"), nil
	}

	canonical, macros, err := h.tracker.Reference().Lookup(name)
	if err != nil {
		if errors.Is(err, nutrition.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("no food matching %q", name)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"name":     canonical,
		"per_100g": macros,
	})
}

// SearchRecipes handles the search_recipes tool
func (h *Handlers) SearchRecipes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	maxResults := request.GetInt("max_results", 0)

	results, err := h.tracker.SearchRecipes(query, maxResults)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	type hit struct {
		ID       string  `json:"recipe_id"`
		Title    string  `json:"title"`
		Tags     []string `json:"tags,omitempty"`
		Servings int     `json:"servings"`
		Score    float64 `json:"score"`
	}
	hits := make([]hit, len(results))
	for i, r := range results {
		hits[i] = hit{
			ID:       r.Document.ID,
			Title:    r.Document.Title,
			Tags:     r.Document.Tags,
			Servings: r.Document.Servings,
			Score:    r.Score,
		}
	}
	return jsonResult(map[string]interface{}{"results": hits})
}

// RecipeSteps handles the recipe_steps tool
func (h *Handlers) RecipeSteps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}

	servings := request.GetInt("servings", 0)
	if servings == 0 {
		doc, err := h.tracker.ResolveRecipe(query)
		if err == nil {
			servings = doc.Servings
		} else {
			servings = 1
		}
	}

	scaled, err := h.tracker.CookRecipe(query, servings)
	if err != nil {
		if errors.Is(err, recipes.ErrRecipeNotFound) {
			suggestions, serr := h.tracker.SuggestRecipes(query, 3)
			if serr == nil && len(suggestions) > 0 {
				titles := make([]string, len(suggestions))
				for i, doc := range suggestions {
					titles[i] = doc.Title
				}
				return jsonResult(map[string]interface{}{
					"error":       fmt.Sprintf("no recipe matching %q", query),
					"suggestions": titles,
				})
			}
			return mcp.NewToolResultError(fmt.Sprintf("no recipe matching %q", query)), nil
		}
		if errors.Is(err, nutrition.ErrValidation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to prepare recipe: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"title":    scaled.Recipe.Title,
		"servings": scaled.Servings,
		"macros":   scaled.Macros,
		"steps":    scaled.Steps,
	})
}

// EstimateIngredients handles the estimate_ingredients tool
func (h *Handlers) EstimateIngredients(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query argument is required and must be a string"), nil
	}
	servings := request.GetInt("servings", 0)

	estimates, err := h.tracker.EstimateIngredients(query, servings)
	if err != nil {
		switch {
		case errors.Is(err, recipes.ErrRecipeNotFound):
			return mcp.NewToolResultError(fmt.Sprintf("no recipe matching %q", query)), nil
		case errors.Is(err, nutrition.ErrNoMatch):
			return mcp.NewToolResultError("no ingredients matched the nutrition reference"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to estimate ingredients: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{"estimates": estimates})
}

// GeneratePlan handles the generate_plan tool
func (h *Handlers) GeneratePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	calories, err := request.RequireFloat("calories")
	if err != nil {
		return mcp.NewToolResultError("calories argument is required and must be a number"), nil
	}

	startDate, err := parseDate(request.GetString("start_date", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid start_date: %v", err)), nil
	}

	targets := models.MacroTargets{
		Calories:    calories,
		ProteinG:    request.GetFloat("protein_g", 0),
		CarbG:       request.GetFloat("carb_g", 0),
		FatG:        request.GetFloat("fat_g", 0),
		DietTags:    request.GetStringSlice("diet_tags", nil),
		Exclusions:  request.GetStringSlice("exclusions", nil),
		MealsPerDay: request.GetInt("meals_per_day", 3),
	}
	days := request.GetInt("days", 7)

	plan, err := h.tracker.GeneratePlan(targets, startDate, days)
	if err != nil {
		if errors.Is(err, nutrition.ErrValidation) {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("failed to generate plan: %v", err)), nil
	}

	return jsonResult(map[string]interface{}{
		"days":        plan,
		"plan_totals": models.PlanTotals(plan),
		"target_delta": models.MacroDelta(
			models.PlanTotals(plan),
			targets.Macros().Scale(float64(len(plan)))),
	})
}
