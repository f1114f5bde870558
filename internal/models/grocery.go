// ABOUTME: Grocery list entry model grouped by store category
// ABOUTME: Quantities are aggregated per (name, unit) pair when building lists
package models

// GroceryItem is a shopping list entry aggregated from a meal plan
type GroceryItem struct {
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}
