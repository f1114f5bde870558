// ABOUTME: Recipe corpus CSV loader producing immutable RecipeDocuments
// ABOUTME: Rows carry title, |-joined ingredients, steps, ;-joined tags, per-serving macros
package recipes

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/harper/nutritrack/internal/models"
)

// LoadCorpus reads the recipe dataset CSV. Expected header columns:
// title, ingredients, steps, tags, per_serving_calories, protein_g,
// carb_g, fat_g, servings. Ingredients are '|'-separated, tags are
// ';'-separated. Rows with missing columns are skipped.
func LoadCorpus(path string) ([]models.RecipeDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe corpus: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse recipe corpus: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("recipe corpus %s has no data rows", path)
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"title", "ingredients", "steps", "tags", "per_serving_calories", "protein_g", "carb_g", "fat_g", "servings"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("recipe corpus %s missing column %q", path, required)
		}
	}

	var docs []models.RecipeDocument
	for idx, row := range rows[1:] {
		if len(row) < len(col) {
			continue
		}

		field := func(name string) string { return strings.TrimSpace(row[col[name]]) }

		title := field("title")
		if title == "" {
			continue
		}

		ingredients := splitList(field("ingredients"), "|")
		tags := splitList(field("tags"), ";")
		steps := field("steps")

		servings := int(parseFloat(field("servings"), 1))
		if servings < 1 {
			servings = 1
		}

		text := strings.Join([]string{
			title,
			strings.Join(ingredients, ", "),
			steps,
			"Tags: " + field("tags"),
		}, "\n")

		docs = append(docs, models.RecipeDocument{
			ID:          fmt.Sprintf("recipe-%d", idx),
			Title:       title,
			Text:        text,
			Ingredients: ingredients,
			StepsText:   steps,
			Tags:        tags,
			Servings:    servings,
			PerServing: models.Macros{
				Calories: parseFloat(field("per_serving_calories"), 0),
				ProteinG: parseFloat(field("protein_g"), 0),
				CarbG:    parseFloat(field("carb_g"), 0),
				FatG:     parseFloat(field("fat_g"), 0),
			},
		})
	}

	return docs, nil
}

func splitList(raw, sep string) []string {
	var out []string
	for _, part := range strings.Split(raw, sep) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseFloat(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
