// ABOUTME: Tests for the nutrition reference store
// ABOUTME: Verifies lookup order, add rescaling, validation, and cache refresh
package nutrition

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/harper/nutritrack/internal/kv"
	"github.com/harper/nutritrack/internal/models"
)

func newTestReference(t *testing.T) *Reference {
	t.Helper()
	return NewReference(kv.NewMemory())
}

func TestLookupExactMatch(t *testing.T) {
	ref := newTestReference(t)

	name, macros, err := ref.Lookup("Banana")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if name != "banana" {
		t.Errorf("canonical name = %q, want banana", name)
	}
	if macros.Calories != 89 {
		t.Errorf("Calories = %v, want 89", macros.Calories)
	}
}

func TestLookupSubstringFirstMatchWins(t *testing.T) {
	ref := NewReference(kv.NewMemory())

	if err := ref.Add("apple pie", models.Macros{Calories: 237, ProteinG: 1.9, CarbG: 34, FatG: 11}, 100); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// "pie" is a substring of "apple pie" only; "apple" matches the seed
	// entry "apple" exactly before any substring scan.
	name, _, err := ref.Lookup("apple")
	if err != nil {
		t.Fatalf("Lookup(apple) error = %v", err)
	}
	if name != "apple" {
		t.Errorf("exact match should win: got %q, want apple", name)
	}

	// "yogurt" has no exact entry; the first substring match in sorted
	// order is "greek yogurt".
	name, _, err = ref.Lookup("yogurt")
	if err != nil {
		t.Fatalf("Lookup(yogurt) error = %v", err)
	}
	if name != "greek yogurt" {
		t.Errorf("substring match = %q, want greek yogurt", name)
	}
}

func TestLookupNotFound(t *testing.T) {
	ref := newTestReference(t)

	_, _, err := ref.Lookup("unobtainium")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Lookup(unobtainium) error = %v, want ErrNotFound", err)
	}
}

func TestAddRescalesToReferenceBasis(t *testing.T) {
	ref := newTestReference(t)

	// 50g of the food has 100 kcal, so per-100g is 200 kcal
	err := ref.Add("test bar", models.Macros{Calories: 100, ProteinG: 5, CarbG: 10, FatG: 2}, 50)
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	_, macros, err := ref.Lookup("test bar")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if macros.Calories != 200 {
		t.Errorf("Calories = %v, want 200", macros.Calories)
	}
	if macros.ProteinG != 10 {
		t.Errorf("ProteinG = %v, want 10", macros.ProteinG)
	}
}

func TestAddScalingProportionalInvariant(t *testing.T) {
	// The stored per-100g value is invariant under the choice of
	// referenceGrams as long as inputs scale proportionally.
	for _, refGrams := range []float64{25, 100, 250} {
		ref := newTestReference(t)
		in := models.Macros{Calories: 2, ProteinG: 0.3, CarbG: 0.1, FatG: 0.05}.Scale(refGrams)

		if err := ref.Add("scaled food", in, refGrams); err != nil {
			t.Fatalf("Add(refGrams=%v) error = %v", refGrams, err)
		}

		_, macros, err := ref.Lookup("scaled food")
		if err != nil {
			t.Fatalf("Lookup() error = %v", err)
		}
		if math.Abs(macros.Calories-200) > 1e-9 {
			t.Errorf("refGrams=%v: Calories = %v, want 200", refGrams, macros.Calories)
		}
		if math.Abs(macros.ProteinG-30) > 1e-9 {
			t.Errorf("refGrams=%v: ProteinG = %v, want 30", refGrams, macros.ProteinG)
		}
	}
}

func TestAddValidation(t *testing.T) {
	ref := newTestReference(t)

	tests := []struct {
		name     string
		food     string
		refGrams float64
		macros   models.Macros
	}{
		{"empty name", "", 100, models.Macros{Calories: 100}},
		{"whitespace name", "   ", 100, models.Macros{Calories: 100}},
		{"zero reference grams", "thing", 0, models.Macros{Calories: 100}},
		{"negative reference grams", "thing", -10, models.Macros{Calories: 100}},
		{"negative macro", "thing", 100, models.Macros{Calories: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ref.Add(tt.food, tt.macros, tt.refGrams)
			if !errors.Is(err, ErrValidation) {
				t.Errorf("Add() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestListSorted(t *testing.T) {
	ref := newTestReference(t)

	if err := ref.Add("Zucchini", models.Macros{Calories: 17, ProteinG: 1.2, CarbG: 3.1, FatG: 0.3}, 100); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	names, err := ref.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) == 0 {
		t.Fatal("List() returned no names")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("List() not sorted: %v", names)
	}

	found := false
	for _, n := range names {
		if n == "zucchini" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing newly added food zucchini")
	}
}

func TestAddVisibleImmediately(t *testing.T) {
	ref := newTestReference(t)

	// Populate cache first so Add must refresh it
	if _, err := ref.List(); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if err := ref.Add("dragonfruit", models.Macros{Calories: 60, ProteinG: 1.2, CarbG: 13, FatG: 0}, 100); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	name, _, err := ref.Lookup("dragonfruit")
	if err != nil {
		t.Fatalf("Lookup() after Add error = %v", err)
	}
	if name != "dragonfruit" {
		t.Errorf("name = %q, want dragonfruit", name)
	}
}

func TestRefreshPicksUpExternalWrites(t *testing.T) {
	store := kv.NewMemory()
	ref := NewReference(store)

	if _, err := ref.List(); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// Write directly to the backing KV, bypassing the store
	entry := FoodEntry{Name: "kimchi", Macros: models.Macros{Calories: 15, ProteinG: 1.1, CarbG: 2.4, FatG: 0.5}}
	if err := store.SetJSON(kv.FoodKey("kimchi"), entry); err != nil {
		t.Fatalf("SetJSON() error = %v", err)
	}

	if _, _, err := ref.Lookup("kimchi"); !errors.Is(err, ErrNotFound) {
		t.Fatal("stale cache should not see external write before Refresh")
	}

	if err := ref.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if _, _, err := ref.Lookup("kimchi"); err != nil {
		t.Errorf("Lookup(kimchi) after Refresh error = %v", err)
	}
}
