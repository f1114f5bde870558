// ABOUTME: Tests for grocery list aggregation and CSV export
// ABOUTME: Verifies merge idempotence, categorization, and sort order
package planner

import (
	"strings"
	"testing"

	"github.com/harper/nutritrack/internal/models"
)

func groceryPlan() []models.PlanDay {
	item := func(name string, qty float64) models.MealItem {
		return models.MealItem{Name: name, Quantity: qty, Unit: "serving"}
	}
	return []models.PlanDay{
		{Meals: []models.PlanMeal{
			{Items: []models.MealItem{item("Greek Yogurt", 1), item("Banana", 1)}},
			{Items: []models.MealItem{item("Chicken Breast", 0.5), item("Rice", 0.5)}},
		}},
		{Meals: []models.PlanMeal{
			{Items: []models.MealItem{item("greek yogurt", 1), item("Banana", 2)}},
		}},
	}
}

func TestExpandIngredients(t *testing.T) {
	days := []models.PlanDay{{
		Meals: []models.PlanMeal{
			{
				Name:     "Greek Yogurt Bowl",
				MealType: models.MealBreakfast,
				Items: []models.MealItem{
					{Name: "Greek Yogurt Bowl", Quantity: 2, Unit: "serving", Calories: 640},
				},
			},
			{
				Name:  "Mystery Meal",
				Items: []models.MealItem{{Name: "Mystery Meal", Quantity: 1, Unit: "serving"}},
			},
		},
	}}
	lookup := map[string][]string{
		"greek yogurt bowl": {"greek yogurt", "banana"},
	}

	expanded := ExpandIngredients(days, lookup)

	got := expanded[0].Meals[0].Items
	if len(got) != 2 {
		t.Fatalf("expanded items = %d, want one per ingredient", len(got))
	}
	for _, item := range got {
		if item.Quantity != 2 {
			t.Errorf("%s quantity = %v, want the meal's serving count 2", item.Name, item.Quantity)
		}
		if item.Unit != "serving" {
			t.Errorf("%s unit = %q, want serving", item.Name, item.Unit)
		}
	}

	// Meals without a corpus match keep their original items.
	kept := expanded[0].Meals[1].Items
	if len(kept) != 1 || kept[0].Name != "Mystery Meal" {
		t.Errorf("unmatched meal items = %v, want original item kept", kept)
	}

	// The input plan is untouched.
	if days[0].Meals[0].Items[0].Name != "Greek Yogurt Bowl" {
		t.Error("ExpandIngredients modified the input plan")
	}
}

func TestBuildGroceryListMerges(t *testing.T) {
	list := BuildGroceryList(groceryPlan())

	if len(list) != 4 {
		t.Fatalf("items = %d, want 4 distinct (name, unit) pairs", len(list))
	}

	byName := make(map[string]models.GroceryItem, len(list))
	for _, item := range list {
		byName[item.Name] = item
	}

	if got := byName["greek yogurt"].Quantity; got != 2 {
		t.Errorf("greek yogurt quantity = %v, want 2 (case-insensitive merge)", got)
	}
	if got := byName["banana"].Quantity; got != 3 {
		t.Errorf("banana quantity = %v, want 3", got)
	}
}

func TestBuildGroceryListMergeIdempotence(t *testing.T) {
	plan := groceryPlan()
	once := BuildGroceryList(plan)
	twice := BuildGroceryList(append(plan, plan...))

	if len(once) != len(twice) {
		t.Fatalf("doubling the plan changed row count: %d != %d", len(once), len(twice))
	}
	for i := range once {
		if twice[i].Name != once[i].Name {
			t.Errorf("row %d name = %s, want %s", i, twice[i].Name, once[i].Name)
		}
		if twice[i].Quantity != once[i].Quantity*2 {
			t.Errorf("row %d quantity = %v, want doubled %v", i, twice[i].Quantity, once[i].Quantity*2)
		}
	}
}

func TestBuildGroceryListCategories(t *testing.T) {
	list := BuildGroceryList(groceryPlan())

	want := map[string]string{
		"banana":         "Produce",
		"chicken breast": "Protein",
		"greek yogurt":   "Dairy",
		"rice":           "Pantry",
	}
	for _, item := range list {
		if item.Category != want[item.Name] {
			t.Errorf("%s category = %s, want %s", item.Name, item.Category, want[item.Name])
		}
	}

	// Sorted by category, then name.
	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Category > cur.Category || (prev.Category == cur.Category && prev.Name > cur.Name) {
			t.Errorf("list not sorted at row %d: %v before %v", i, prev, cur)
		}
	}
}

func TestCategorizeUnknown(t *testing.T) {
	if got := Categorize("mystery paste"); got != "Other" {
		t.Errorf("Categorize(unknown) = %s, want Other", got)
	}
}

func TestWriteGroceryCSV(t *testing.T) {
	var sb strings.Builder
	err := WriteGroceryCSV(&sb, []models.GroceryItem{
		{Category: "Produce", Name: "banana", Quantity: 3, Unit: "serving"},
		{Category: "Dairy", Name: "greek yogurt", Quantity: 2.5, Unit: "cup"},
	})
	if err != nil {
		t.Fatalf("WriteGroceryCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want header plus 2 rows", len(lines))
	}
	if lines[0] != "category,item,quantity,unit" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "Produce,banana,3,serving" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "Dairy,greek yogurt,2.5,cup" {
		t.Errorf("row 2 = %q", lines[2])
	}
}
