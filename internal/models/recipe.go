// ABOUTME: Recipe corpus document and cooking step models
// ABOUTME: RecipeDocument is immutable after corpus ingestion
package models

// RecipeDocument is a normalized recipe from the corpus. PerServing macros
// apply to one base serving. Documents are created once at ingestion and
// never mutated; the retrieval index stores one embedding per document.
type RecipeDocument struct {
	ID          string   `json:"recipe_id"`
	Title       string   `json:"title"`
	Text        string   `json:"text"`
	Ingredients []string `json:"ingredients"`
	StepsText   string   `json:"steps_text"`
	Tags        []string `json:"tags"`
	Servings    int      `json:"servings"`
	PerServing  Macros   `json:"per_serving"`
}

// Step is one numbered cooking instruction
type Step struct {
	Idx              int      `json:"idx"`
	Instruction      string   `json:"instruction"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Tips             []string `json:"tips"`
	Substitutions    []string `json:"substitutions"`
}
