// ABOUTME: Unit normalizer converting volume and mass units to grams
// ABOUTME: Unknown units pass through unchanged rather than erroring
package nutrition

import "strings"

// GramEquivalents maps known unit names to their multiplicative gram
// factors. Volume units are treated as mass 1:1 (ml = 1g), a deliberate
// approximation for household measures.
var GramEquivalents = map[string]float64{
	"g":     1.0,
	"gram":  1.0,
	"grams": 1.0,
	"kg":    1000.0,
	"mg":    0.001,
	"lb":    453.592,
	"oz":    28.3495,
	"ml":    1.0,
	"l":     1000.0,
	"cup":   240.0,
	"tbsp":  15.0,
	"tsp":   5.0,
	"piece": 1.0,
	"pcs":   1.0,
	"unit":  1.0,
}

// NormalizeUnit converts a quantity in the given unit to grams when the
// unit is in the conversion table, returning (grams, "g"). Any other unit
// passes through unchanged. No rounding is applied.
func NormalizeUnit(quantity float64, unit string) (float64, string) {
	factor, ok := GramEquivalents[strings.ToLower(unit)]
	if !ok {
		return quantity, unit
	}
	return quantity * factor, "g"
}

// KnownUnit reports whether token (case-insensitive, singular or plural
// with a trailing 's') names a unit in the conversion table.
func KnownUnit(token string) bool {
	lower := strings.ToLower(token)
	if _, ok := GramEquivalents[lower]; ok {
		return true
	}
	if stripped, found := strings.CutSuffix(lower, "s"); found {
		_, ok := GramEquivalents[stripped]
		return ok
	}
	return false
}

// CanonicalUnit lowercases token and strips a plural trailing 's' when the
// singular form is a known unit ("cups" -> "cup"). Unknown tokens are
// returned lowercased.
func CanonicalUnit(token string) string {
	lower := strings.ToLower(token)
	if _, ok := GramEquivalents[lower]; ok {
		return lower
	}
	if stripped, found := strings.CutSuffix(lower, "s"); found {
		if _, ok := GramEquivalents[stripped]; ok {
			return stripped
		}
	}
	return lower
}
