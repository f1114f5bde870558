// ABOUTME: Tests for the recipe corpus CSV loader
// ABOUTME: Verifies column mapping, list splitting, and malformed row handling
package recipes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testCSV = `title,ingredients,steps,tags,per_serving_calories,protein_g,carb_g,fat_g,servings
Greek Yogurt Bowl,greek yogurt|banana|honey,Slice the banana. Layer with yogurt. Drizzle honey.,breakfast;vegetarian,320,18,45,8,1
Chicken Stir Fry,chicken breast|broccoli|rice|soy sauce,Cook the rice. Sear the chicken. Toss with broccoli.,dinner;high-protein,540,42,55,14,2
,missing title|row,Skip me.,none,100,1,1,1,1
Lentil Curry,lentils|coconut milk|spinach,Simmer lentils. Stir in coconut milk. Wilt the spinach.,dinner;vegan,430,21,60,12,4
`

func writeTestCorpus(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatalf("failed to write test corpus: %v", err)
	}
	return path
}

func TestLoadCorpus(t *testing.T) {
	docs, err := LoadCorpus(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	// The titleless row is dropped.
	if len(docs) != 3 {
		t.Fatalf("docs = %d, want 3", len(docs))
	}

	first := docs[0]
	if first.Title != "Greek Yogurt Bowl" {
		t.Errorf("title = %q", first.Title)
	}
	if len(first.Ingredients) != 3 || first.Ingredients[1] != "banana" {
		t.Errorf("ingredients = %v, want 3 entries with banana second", first.Ingredients)
	}
	if len(first.Tags) != 2 || first.Tags[0] != "breakfast" {
		t.Errorf("tags = %v, want [breakfast vegetarian]", first.Tags)
	}
	if first.Servings != 1 {
		t.Errorf("servings = %d, want 1", first.Servings)
	}
	if first.PerServing.Calories != 320 || first.PerServing.ProteinG != 18 {
		t.Errorf("per-serving macros = %+v", first.PerServing)
	}

	if docs[1].Servings != 2 {
		t.Errorf("second recipe servings = %d, want 2", docs[1].Servings)
	}
}

func TestLoadCorpusTextIncludesSearchableFields(t *testing.T) {
	docs, err := LoadCorpus(writeTestCorpus(t))
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	text := docs[2].Text
	for _, want := range []string{"Lentil Curry", "coconut milk", "Simmer lentils", "vegan"} {
		if !strings.Contains(text, want) {
			t.Errorf("document text missing %q:\n%s", want, text)
		}
	}
}

func TestLoadCorpusMissingFile(t *testing.T) {
	if _, err := LoadCorpus(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing corpus file")
	}
}

func TestLoadCorpusMissingColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("title,ingredients\nX,y\n"), 0o644); err != nil {
		t.Fatalf("failed to write corpus: %v", err)
	}
	if _, err := LoadCorpus(path); err == nil {
		t.Error("expected error for corpus missing required columns")
	}
}
