// ABOUTME: Meal and MealItem models for logged food intake
// ABOUTME: Items carry per-quantity macros and an estimation flag
package models

import "time"

// MealType identifies which meal of the day an entry belongs to
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// ValidMealType reports whether t is one of the four known meal types
func ValidMealType(t MealType) bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// MealItem represents a single quantified food item within a meal.
// Macros are for the full quantity, not per 100g. Estimated marks items
// whose macros came from approximate unit conversion or quantity defaults
// rather than an exact gram-based lookup.
type MealItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Calories  float64 `json:"calories"`
	ProteinG  float64 `json:"protein_g"`
	CarbG     float64 `json:"carb_g"`
	FatG      float64 `json:"fat_g"`
	Estimated bool    `json:"estimated"`
}

// Macros returns the item's macro contribution
func (i MealItem) Macros() Macros {
	return Macros{
		Calories: i.Calories,
		ProteinG: i.ProteinG,
		CarbG:    i.CarbG,
		FatG:     i.FatG,
	}
}

// Meal is a logged meal built from parsed free text
type Meal struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	MealType    MealType   `json:"meal_type"`
	MealDate    time.Time  `json:"meal_date"`
	Items       []MealItem `json:"items"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Totals sums the meal's item macros with finalized rounding
func (m *Meal) Totals() Macros {
	macros := make([]Macros, len(m.Items))
	for i, item := range m.Items {
		macros[i] = item.Macros()
	}
	return SumMacros(macros)
}
