// ABOUTME: Free-text meal description parser resolving quantified food items
// ABOUTME: Tokenizes on quantity/unit/name and resolves against the reference store
package nutrition

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/harper/nutritrack/internal/models"
)

// DefaultUnit is assumed when a segment names no unit. Non-gram units are
// treated as servings multiplied directly against the per-100g reference
// values, a known approximation flagged by MealItem.Estimated.
const DefaultUnit = "serving"

// ParseResult holds resolved items plus any food names that failed lookup.
// Unmatched foods are dropped from the items rather than failing the whole
// parse; only total absence of items is an error.
type ParseResult struct {
	Items     []models.MealItem
	Unmatched []string
}

// Parser resolves free-text meal descriptions against a reference store
type Parser struct {
	ref *Reference
}

// NewParser creates a parser over the given reference store
func NewParser(ref *Reference) *Parser {
	return &Parser{ref: ref}
}

// Parse splits a description like "1 cup greek yogurt and 1 banana" into
// resolved meal items. Segments are separated by commas and the connector
// words "with" and "and". Within a segment, numeric tokens set the
// quantity (last one wins), known unit keywords set the unit, and the
// remaining tokens form the food name.
//
// Returns ErrNoItemsParsed when the description yields zero items, or
// ErrNotFound naming the first unmatched food when every segment failed
// reference lookup.
func (p *Parser) Parse(description string) (*ParseResult, error) {
	result := &ParseResult{}

	for _, segment := range splitSegments(description) {
		quantity := 1.0
		unit := DefaultUnit
		var nameTokens []string

		for _, token := range segment {
			if value, err := strconv.ParseFloat(token, 64); err == nil {
				quantity = value
				continue
			}
			if KnownUnit(token) {
				unit = CanonicalUnit(token)
				continue
			}
			nameTokens = append(nameTokens, token)
		}

		// Segments with no name tokens are dropped silently
		if len(nameTokens) == 0 {
			continue
		}
		if quantity <= 0 {
			quantity = 1.0
		}

		foodName := strings.Join(nameTokens, " ")
		canonical, macros, err := p.ref.Lookup(foodName)
		if err != nil {
			result.Unmatched = append(result.Unmatched, foodName)
			continue
		}

		grams, normalized := NormalizeUnit(quantity, unit)
		factor := quantity
		if normalized == "g" {
			factor = grams / ReferenceBasisGrams
		}
		scaled := macros.Scale(factor)

		result.Items = append(result.Items, models.MealItem{
			Name:      TitleCase(canonical),
			Quantity:  quantity,
			Unit:      unit,
			Calories:  scaled.Calories,
			ProteinG:  scaled.ProteinG,
			CarbG:     scaled.CarbG,
			FatG:      scaled.FatG,
			Estimated: normalized != "g",
		})
	}

	if len(result.Items) == 0 {
		if len(result.Unmatched) > 0 {
			return nil, fmt.Errorf("%w: food %q", ErrNotFound, result.Unmatched[0])
		}
		return nil, fmt.Errorf("%w: %q", ErrNoItemsParsed, description)
	}

	return result, nil
}

// splitSegments breaks a description into token groups separated by commas
// and the connector words "with" and "and"
func splitSegments(description string) [][]string {
	normalized := strings.ReplaceAll(description, ",", " , ")
	tokens := strings.Fields(normalized)

	var segments [][]string
	var current []string
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, current)
			current = nil
		}
	}

	for _, token := range tokens {
		lower := strings.ToLower(token)
		if token == "," || lower == "with" || lower == "and" {
			flush()
			continue
		}
		current = append(current, token)
	}
	flush()

	return segments
}

// TitleCase uppercases the first letter of each space-separated word
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
