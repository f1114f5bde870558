// ABOUTME: Weekly meal plan models and daily macro targets
// ABOUTME: PlanDay owns PlanMeals which own MealItems; totals are derived on read
package models

import "time"

// MacroTargets holds daily targets and planning preferences
type MacroTargets struct {
	Calories    float64  `json:"calories"`
	ProteinG    float64  `json:"protein_g"`
	CarbG       float64  `json:"carb_g"`
	FatG        float64  `json:"fat_g"`
	DietTags    []string `json:"diet_tags,omitempty"`
	Exclusions  []string `json:"exclusions,omitempty"`
	MealsPerDay int      `json:"meals_per_day"`
}

// Macros returns the macro portion of the targets
func (t MacroTargets) Macros() Macros {
	return Macros{
		Calories: t.Calories,
		ProteinG: t.ProteinG,
		CarbG:    t.CarbG,
		FatG:     t.FatG,
	}
}

// PlanMeal is one meal within a planned day
type PlanMeal struct {
	Name     string     `json:"name"`
	MealType MealType   `json:"meal_type"`
	Items    []MealItem `json:"items"`
	Notes    string     `json:"notes,omitempty"`
}

// Totals sums the planned meal's item macros with finalized rounding
func (m *PlanMeal) Totals() Macros {
	macros := make([]Macros, len(m.Items))
	for i, item := range m.Items {
		macros[i] = item.Macros()
	}
	return SumMacros(macros)
}

// PlanDay is an ordered sequence of planned meals for one calendar date
type PlanDay struct {
	Date  time.Time  `json:"date"`
	Meals []PlanMeal `json:"meals"`
}

// Totals sums already-rounded meal totals and rounds again
func (d *PlanDay) Totals() Macros {
	macros := make([]Macros, len(d.Meals))
	for i := range d.Meals {
		macros[i] = d.Meals[i].Totals()
	}
	return SumMacros(macros)
}

// PlanTotals sums already-rounded day totals across a whole plan
func PlanTotals(days []PlanDay) Macros {
	macros := make([]Macros, len(days))
	for i := range days {
		macros[i] = days[i].Totals()
	}
	return SumMacros(macros)
}
