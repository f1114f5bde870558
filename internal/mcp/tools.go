// ABOUTME: MCP tool definitions and registration for the nutrition server
// ABOUTME: Defines JSON schemas for all 8 nutrition tools
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/nutritrack/internal/tracker"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, svc *tracker.Tracker) *Handlers {
	handlers := &Handlers{tracker: svc}

	// 1. log_meal - Parse and log a meal from free text
	server.AddTool(mcp.Tool{
		Name:        "log_meal",
		Description: "Log a meal from a free-text description. Quantities, units, and foods are parsed and matched against the nutrition reference; unmatched foods are reported, not logged.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"description": map[string]interface{}{
					"type":        "string",
					"description": "Free-text meal description, e.g. '1 cup greek yogurt and 1 banana'",
				},
				"meal_type": map[string]interface{}{
					"type":        "string",
					"description": "One of breakfast, lunch, dinner, snack",
					"enum":        []string{"breakfast", "lunch", "dinner", "snack"},
				},
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Meal date as YYYY-MM-DD (default: today)",
				},
			},
			Required: []string{"description", "meal_type"},
		},
	}, handlers.LogMeal)

	// 2. daily_totals - Macro totals for a date
	server.AddTool(mcp.Tool{
		Name:        "daily_totals",
		Description: "Get rounded macro totals and meal count for a calendar date.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"date": map[string]interface{}{
					"type":        "string",
					"description": "Date as YYYY-MM-DD (default: today)",
				},
			},
		},
	}, handlers.DailyTotals)

	// 3. add_food - Add a food to the reference store
	server.AddTool(mcp.Tool{
		Name:        "add_food",
		Description: "Add a food to the nutrition reference. Macros are given at an arbitrary reference gram amount and rescaled to the per-100g basis.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Food name (stored lowercased)",
				},
				"calories": map[string]interface{}{
					"type":        "number",
					"description": "Calories at the reference amount",
				},
				"protein_g": map[string]interface{}{
					"type":        "number",
					"description": "Protein grams at the reference amount",
				},
				"carb_g": map[string]interface{}{
					"type":        "number",
					"description": "Carbohydrate grams at the reference amount",
				},
				"fat_g": map[string]interface{}{
					"type":        "number",
					"description": "Fat grams at the reference amount",
				},
				"reference_grams": map[string]interface{}{
					"type":        "number",
					"description": "Gram amount the macro values describe (default: 100)",
					"default":     100,
				},
			},
			Required: []string{"name", "calories", "protein_g", "carb_g", "fat_g"},
		},
	}, handlers.AddFood)

	// 4. lookup_food - Look up per-100g macros for a food
	server.AddTool(mcp.Tool{
		Name:        "lookup_food",
		Description: "Look up per-100g macros for a food by case-insensitive exact or substring match.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Food name to look up",
				},
			},
			Required: []string{"name"},
		},
	}, handlers.LookupFood)

	// 5. search_recipes - Rank recipes by similarity to a query
	server.AddTool(mcp.Tool{
		Name:        "search_recipes",
		Description: "Search the recipe corpus, returning recipes ranked by similarity score.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search query",
				},
				"max_results": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of results to return (default: 6)",
					"default":     6,
				},
			},
			Required: []string{"query"},
		},
	}, handlers.SearchRecipes)

	// 6. recipe_steps - Resolve a recipe and return scaled steps
	server.AddTool(mcp.Tool{
		Name:        "recipe_steps",
		Description: "Resolve a recipe by title or ingredient and return numbered cooking steps with macros scaled to the requested servings.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Recipe title or ingredient to resolve",
				},
				"servings": map[string]interface{}{
					"type":        "number",
					"description": "Requested serving count (default: recipe base servings)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.RecipeSteps)

	// 7. generate_plan - Generate and persist a meal plan
	server.AddTool(mcp.Tool{
		Name:        "generate_plan",
		Description: "Generate a meal plan against daily macro targets and persist it. Days falling short of the calorie target are scaled up proportionally.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"calories": map[string]interface{}{
					"type":        "number",
					"description": "Daily calorie target",
				},
				"protein_g": map[string]interface{}{
					"type":        "number",
					"description": "Daily protein target in grams",
				},
				"carb_g": map[string]interface{}{
					"type":        "number",
					"description": "Daily carbohydrate target in grams",
				},
				"fat_g": map[string]interface{}{
					"type":        "number",
					"description": "Daily fat target in grams",
				},
				"days": map[string]interface{}{
					"type":        "number",
					"description": "Number of days to plan (default: 7)",
					"default":     7,
				},
				"meals_per_day": map[string]interface{}{
					"type":        "number",
					"description": "Meals per day, 1-4 (default: 3)",
					"default":     3,
				},
				"diet_tags": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Diet tags every selected recipe must carry (e.g. 'vegetarian')",
				},
				"exclusions": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Ingredients to exclude",
				},
				"start_date": map[string]interface{}{
					"type":        "string",
					"description": "First plan date as YYYY-MM-DD (default: today)",
				},
			},
			Required: []string{"calories"},
		},
	}, handlers.GeneratePlan)

	// 8. estimate_ingredients - Approximate gram amounts for a recipe's ingredients
	server.AddTool(mcp.Tool{
		Name:        "estimate_ingredients",
		Description: "Approximate gram amounts for a recipe's ingredients by splitting the per-serving calories evenly across the ingredients found in the nutrition reference.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Recipe title or ingredient to resolve",
				},
				"servings": map[string]interface{}{
					"type":        "number",
					"description": "Requested serving count (default: recipe base servings)",
				},
			},
			Required: []string{"query"},
		},
	}, handlers.EstimateIngredients)

	return handlers
}
