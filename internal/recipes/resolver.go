// ABOUTME: Recipe resolution by title, ingredient, and keyword-overlap fallbacks
// ABOUTME: Single-recipe resolution fails with ErrRecipeNotFound; suggestions never fail
package recipes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/harper/nutritrack/internal/models"
)

// ErrRecipeNotFound indicates no recipe matched by title or ingredient
var ErrRecipeNotFound = errors.New("recipe not found")

// Resolver finds recipes in a loaded corpus by progressively looser
// matching: title containment, then ingredient containment, then
// keyword overlap for suggestion lists.
type Resolver struct {
	docs []models.RecipeDocument
}

// NewResolver creates a resolver over the given corpus documents
func NewResolver(docs []models.RecipeDocument) *Resolver {
	return &Resolver{docs: docs}
}

// Resolve returns the first recipe whose title contains the query or is
// contained by it, falling back to the first recipe with an ingredient
// containing the query. Matching is case-insensitive; first match in
// corpus order wins. Returns ErrRecipeNotFound when both steps fail.
func (r *Resolver) Resolve(query string) (models.RecipeDocument, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return models.RecipeDocument{}, fmt.Errorf("%w: empty query", ErrRecipeNotFound)
	}

	for _, doc := range r.docs {
		title := strings.ToLower(doc.Title)
		if strings.Contains(title, q) || strings.Contains(q, title) {
			return doc, nil
		}
	}

	for _, doc := range r.docs {
		for _, ingredient := range doc.Ingredients {
			if strings.Contains(strings.ToLower(ingredient), q) {
				return doc, nil
			}
		}
	}

	return models.RecipeDocument{}, fmt.Errorf("%w: %q", ErrRecipeNotFound, query)
}

// Suggest ranks every corpus recipe by the count of query tokens
// appearing in its title and ingredients, returning up to limit recipes
// with a positive score. When nothing scores positively the first limit
// recipes in corpus order are returned as a last resort, so suggestions
// are never empty for a non-empty corpus.
func (r *Resolver) Suggest(query string, limit int) []models.RecipeDocument {
	if limit <= 0 {
		limit = 3
	}

	tokens := strings.Fields(strings.ToLower(query))

	type scored struct {
		doc   models.RecipeDocument
		score int
	}
	ranked := make([]scored, 0, len(r.docs))
	for _, doc := range r.docs {
		haystack := strings.ToLower(doc.Title + " " + strings.Join(doc.Ingredients, " "))
		score := 0
		for _, tok := range tokens {
			if strings.Contains(haystack, tok) {
				score++
			}
		}
		ranked = append(ranked, scored{doc: doc, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	var out []models.RecipeDocument
	for _, entry := range ranked {
		if entry.score <= 0 {
			break
		}
		out = append(out, entry.doc)
		if len(out) == limit {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}

	// Nothing overlapped; fall back to corpus order.
	for _, doc := range r.docs {
		out = append(out, doc)
		if len(out) == limit {
			break
		}
	}
	return out
}
