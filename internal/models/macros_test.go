// ABOUTME: Tests for macro aggregation arithmetic
// ABOUTME: Verifies summation, rounding behavior, and target deltas
package models

import (
	"math"
	"testing"
)

func TestSumMacros(t *testing.T) {
	items := []Macros{
		{Calories: 100, ProteinG: 10, CarbG: 20, FatG: 5},
		{Calories: 150, ProteinG: 5, CarbG: 10, FatG: 2.5},
	}

	total := SumMacros(items)

	if total.Calories != 250 {
		t.Errorf("Calories = %v, want 250", total.Calories)
	}
	if total.ProteinG != 15 {
		t.Errorf("ProteinG = %v, want 15", total.ProteinG)
	}
	if total.CarbG != 30 {
		t.Errorf("CarbG = %v, want 30", total.CarbG)
	}
	if total.FatG != 7.5 {
		t.Errorf("FatG = %v, want 7.5", total.FatG)
	}
}

func TestSumMacrosEmpty(t *testing.T) {
	total := SumMacros(nil)
	if total != (Macros{}) {
		t.Errorf("SumMacros(nil) = %+v, want zero value", total)
	}
}

func TestRoundHalfToEven(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.125, 0.12}, // exact midpoint rounds to even
		{0.375, 0.38},
		{2.125, 2.12},
		{1.005, 1.0}, // float repr is slightly below the midpoint
		{-2.125, -2.12},
	}

	for _, tt := range tests {
		got := Macros{Calories: tt.in}.Round().Calories
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRoundingAppliedOnceAtFinalization(t *testing.T) {
	// Intermediate values stay unrounded: Add and Scale must not round.
	m := Macros{Calories: 0.333333}.Add(Macros{Calories: 0.333333})
	if m.Calories != 0.666666 {
		t.Errorf("Add rounded intermediate value: %v", m.Calories)
	}

	scaled := Macros{Calories: 1.234567}.Scale(2)
	if scaled.Calories != 2.469134 {
		t.Errorf("Scale rounded intermediate value: %v", scaled.Calories)
	}
}

func TestCompositeTotalsReRound(t *testing.T) {
	day := PlanDay{
		Meals: []PlanMeal{
			{Items: []MealItem{{Calories: 100.004}}},
			{Items: []MealItem{{Calories: 100.004}}},
		},
	}

	// Each meal rounds to 100.0, the day sums rounded children.
	total := day.Totals()
	if total.Calories != 200.0 {
		t.Errorf("day total = %v, want 200.0 (sum of rounded meal totals)", total.Calories)
	}
}

func TestMacroDelta(t *testing.T) {
	totals := Macros{Calories: 1800, ProteinG: 120, CarbG: 150, FatG: 60}
	targets := Macros{Calories: 2000, ProteinG: 100, CarbG: 200, FatG: 70}

	delta := MacroDelta(totals, targets)

	if delta.Calories != -200 {
		t.Errorf("Calories delta = %v, want -200", delta.Calories)
	}
	if delta.ProteinG != 20 {
		t.Errorf("ProteinG delta = %v, want 20", delta.ProteinG)
	}
	if delta.CarbG != -50 {
		t.Errorf("CarbG delta = %v, want -50", delta.CarbG)
	}
	if delta.FatG != -10 {
		t.Errorf("FatG delta = %v, want -10", delta.FatG)
	}
}
