// ABOUTME: Grocery list builder aggregating plan ingredients by name and unit
// ABOUTME: Items are bucketed into store categories and exportable as CSV
package planner

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harper/nutritrack/internal/models"
	"github.com/harper/nutritrack/internal/nutrition"
)

// categoryKeywords maps store categories to the ingredient keywords that
// select them. First category whose keyword matches wins; order below is
// the check order.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Produce", []string{"banana", "apple", "berry", "berries", "spinach", "broccoli", "lettuce", "tomato", "onion", "pepper", "carrot", "avocado", "cucumber", "garlic", "lemon", "lime", "mushroom", "potato", "orange"}},
	{"Protein", []string{"chicken", "beef", "turkey", "pork", "fish", "salmon", "tuna", "shrimp", "egg", "tofu", "lentil", "bean", "chickpea"}},
	{"Dairy", []string{"milk", "yogurt", "cheese", "butter", "cream"}},
	{"Pantry", []string{"rice", "oat", "pasta", "bread", "flour", "oil", "sauce", "honey", "sugar", "salt", "quinoa", "spice", "vinegar", "broth", "stock", "nut", "almond", "peanut"}},
}

// ExpandIngredients replaces each plan meal's items with one item per
// recipe ingredient, carrying the meal's serving quantity, so grocery
// aggregation works at the ingredient level. Meals whose recipe title is
// not in the lookup keep their original items. The input plan is not
// modified.
func ExpandIngredients(days []models.PlanDay, ingredientsByTitle map[string][]string) []models.PlanDay {
	out := make([]models.PlanDay, len(days))
	for di, day := range days {
		expanded := models.PlanDay{Date: day.Date, Meals: make([]models.PlanMeal, len(day.Meals))}
		for mi, meal := range day.Meals {
			expanded.Meals[mi] = meal

			ingredients := ingredientsByTitle[strings.ToLower(strings.TrimSpace(meal.Name))]
			if len(ingredients) == 0 {
				continue
			}

			servings := 0.0
			for _, item := range meal.Items {
				servings += item.Quantity
			}

			items := make([]models.MealItem, 0, len(ingredients))
			for _, ingredient := range ingredients {
				items = append(items, models.MealItem{
					Name:      ingredient,
					Quantity:  servings,
					Unit:      "serving",
					Estimated: true,
				})
			}
			expanded.Meals[mi].Items = items
		}
		out[di] = expanded
	}
	return out
}

// BuildGroceryList aggregates every item across the plan's days into a
// deduplicated grocery list. Items sharing a (lowercased name, unit)
// pair merge into one entry with summed quantity, so merging a plan with
// itself doubles quantities without adding rows. The result is sorted by
// category then name.
func BuildGroceryList(days []models.PlanDay) []models.GroceryItem {
	type key struct {
		name string
		unit string
	}

	totals := make(map[key]float64)
	order := make([]key, 0)
	for _, day := range days {
		for _, meal := range day.Meals {
			for _, item := range meal.Items {
				k := key{
					name: strings.ToLower(strings.TrimSpace(item.Name)),
					unit: nutrition.CanonicalUnit(item.Unit),
				}
				if k.name == "" {
					continue
				}
				if _, seen := totals[k]; !seen {
					order = append(order, k)
				}
				totals[k] += item.Quantity
			}
		}
	}

	list := make([]models.GroceryItem, 0, len(order))
	for _, k := range order {
		list = append(list, models.GroceryItem{
			Category: Categorize(k.name),
			Name:     k.name,
			Quantity: totals[k],
			Unit:     k.unit,
		})
	}

	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Category != list[j].Category {
			return list[i].Category < list[j].Category
		}
		return list[i].Name < list[j].Name
	})
	return list
}

// Categorize returns the store category for an ingredient name,
// defaulting to Other when no keyword matches.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, bucket := range categoryKeywords {
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				return bucket.category
			}
		}
	}
	return "Other"
}

// WriteGroceryCSV writes the grocery list as CSV with a header row
func WriteGroceryCSV(w io.Writer, items []models.GroceryItem) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"category", "item", "quantity", "unit"}); err != nil {
		return fmt.Errorf("failed to write grocery header: %w", err)
	}
	for _, item := range items {
		record := []string{
			item.Category,
			item.Name,
			strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", item.Quantity), "0"), "."),
			item.Unit,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write grocery row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
