// ABOUTME: Macro nutrient value type and aggregation arithmetic
// ABOUTME: Defines Macros, summation with 2dp banker's rounding, and target deltas
package models

import "math"

// Macros holds the four tracked macro nutrients. Calories are kcal,
// the remaining fields are grams.
type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbG    float64 `json:"carb_g"`
	FatG     float64 `json:"fat_g"`
}

// Add returns the component-wise sum of two macro sets without rounding.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		ProteinG: m.ProteinG + other.ProteinG,
		CarbG:    m.CarbG + other.CarbG,
		FatG:     m.FatG + other.FatG,
	}
}

// Scale returns the macros multiplied by factor without rounding.
func (m Macros) Scale(factor float64) Macros {
	return Macros{
		Calories: m.Calories * factor,
		ProteinG: m.ProteinG * factor,
		CarbG:    m.CarbG * factor,
		FatG:     m.FatG * factor,
	}
}

// Round returns the macros with every field rounded to 2 decimal places
// using round-half-to-even. Rounding is applied only when totals are
// finalized, never on intermediate per-item values.
func (m Macros) Round() Macros {
	return Macros{
		Calories: round2(m.Calories),
		ProteinG: round2(m.ProteinG),
		CarbG:    round2(m.CarbG),
		FatG:     round2(m.FatG),
	}
}

// SumMacros sums macro contributions across a collection and rounds the
// result to 2 decimal places. Composite totals (meal, day, week) recurse
// by summing already-rounded child totals and rounding again; the small
// compounding of rounding error across levels is accepted.
func SumMacros(items []Macros) Macros {
	var total Macros
	for _, item := range items {
		total = total.Add(item)
	}
	return total.Round()
}

// MacroDelta returns totals minus targets per macro, rounded to 2dp.
func MacroDelta(totals, targets Macros) Macros {
	return Macros{
		Calories: totals.Calories - targets.Calories,
		ProteinG: totals.ProteinG - targets.ProteinG,
		CarbG:    totals.CarbG - targets.CarbG,
		FatG:     totals.FatG - targets.FatG,
	}.Round()
}

func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
