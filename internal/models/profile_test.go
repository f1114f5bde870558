// ABOUTME: Tests for UserProfile persistence
// ABOUTME: Verifies JSON save/load round-trip and missing-file behavior
package models

import (
	"testing"
)

func TestLoadUserProfileMissing(t *testing.T) {
	dir := t.TempDir()

	profile, err := LoadUserProfile(dir)
	if err != nil {
		t.Fatalf("LoadUserProfile() error = %v", err)
	}
	if profile != nil {
		t.Error("LoadUserProfile() should return nil when no profile exists")
	}
}

func TestUserProfileSaveLoad(t *testing.T) {
	dir := t.TempDir()

	profile := &UserProfile{
		Name:        "Alex",
		Goal:        "maintain",
		DietTags:    []string{"vegetarian"},
		Exclusions:  []string{"peanut"},
		MealsPerDay: 3,
		Targets:     Macros{Calories: 2000, ProteinG: 120, CarbG: 220, FatG: 65},
	}

	if err := profile.Save(dir); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadUserProfile(dir)
	if err != nil {
		t.Fatalf("LoadUserProfile() error = %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadUserProfile() returned nil after save")
	}

	if loaded.Name != "Alex" {
		t.Errorf("Name = %q, want Alex", loaded.Name)
	}
	if loaded.Targets.Calories != 2000 {
		t.Errorf("Targets.Calories = %v, want 2000", loaded.Targets.Calories)
	}
	if loaded.LastUpdated.IsZero() {
		t.Error("LastUpdated should be set on save")
	}

	targets := loaded.MacroTargets()
	if targets.MealsPerDay != 3 {
		t.Errorf("MealsPerDay = %v, want 3", targets.MealsPerDay)
	}
	if len(targets.DietTags) != 1 || targets.DietTags[0] != "vegetarian" {
		t.Errorf("DietTags = %v, want [vegetarian]", targets.DietTags)
	}
}

func TestMealTotals(t *testing.T) {
	meal := Meal{
		Items: []MealItem{
			{Name: "Oats", Calories: 389, ProteinG: 16.9, CarbG: 66.3, FatG: 6.9},
			{Name: "Milk", Calories: 42, ProteinG: 3.4, CarbG: 5, FatG: 1},
		},
	}

	totals := meal.Totals()
	if totals.Calories != 431 {
		t.Errorf("Calories = %v, want 431", totals.Calories)
	}
	if totals.ProteinG != 20.3 {
		t.Errorf("ProteinG = %v, want 20.3", totals.ProteinG)
	}
}

func TestValidMealType(t *testing.T) {
	for _, mt := range []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack} {
		if !ValidMealType(mt) {
			t.Errorf("ValidMealType(%q) = false, want true", mt)
		}
	}
	if ValidMealType("brunch") {
		t.Error("ValidMealType(brunch) = true, want false")
	}
}
