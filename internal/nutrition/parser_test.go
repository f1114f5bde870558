// ABOUTME: Tests for the free-text meal description parser
// ABOUTME: Verifies tokenization, unit handling, estimation flags, and error cases
package nutrition

import (
	"errors"
	"math"
	"testing"

	"github.com/harper/nutritrack/internal/kv"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	return NewParser(NewReference(kv.NewMemory()))
}

func TestParseTwoItems(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("1 cup greek yogurt and 1 banana")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(result.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(result.Items))
	}

	yogurt := result.Items[0]
	if yogurt.Name != "Greek Yogurt" {
		t.Errorf("first item name = %q, want Greek Yogurt", yogurt.Name)
	}
	// 1 cup = 240g, macros scale by 2.4 against the per-100g basis
	if math.Abs(yogurt.Calories-59*2.4) > 1e-9 {
		t.Errorf("yogurt calories = %v, want %v", yogurt.Calories, 59*2.4)
	}
	if yogurt.Estimated {
		t.Error("gram-convertible cup should not be estimated")
	}

	banana := result.Items[1]
	if banana.Name != "Banana" {
		t.Errorf("second item name = %q, want Banana", banana.Name)
	}
	if banana.Calories <= 0 {
		t.Error("banana calories should be positive")
	}
	if !banana.Estimated {
		t.Error("serving-based banana should be estimated")
	}
}

func TestParseGramQuantity(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("150 g chicken breast")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(result.Items))
	}

	item := result.Items[0]
	if math.Abs(item.Calories-165*1.5) > 1e-9 {
		t.Errorf("calories = %v, want %v", item.Calories, 165*1.5)
	}
	if item.Estimated {
		t.Error("exact gram lookup should not be estimated")
	}
	if item.Quantity != 150 || item.Unit != "g" {
		t.Errorf("quantity/unit = %v %q, want 150 g", item.Quantity, item.Unit)
	}
}

func TestParseLastNumericTokenWins(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("1 2 banana")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if result.Items[0].Quantity != 2 {
		t.Errorf("quantity = %v, want 2 (last numeric wins)", result.Items[0].Quantity)
	}
}

func TestParsePluralUnits(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("2 cups milk")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	item := result.Items[0]
	if item.Unit != "cup" {
		t.Errorf("unit = %q, want cup", item.Unit)
	}
	// 2 cups = 480g = 4.8x the 100g basis
	if math.Abs(item.Calories-42*4.8) > 1e-9 {
		t.Errorf("calories = %v, want %v", item.Calories, 42*4.8)
	}
}

func TestParseCommaSeparatedSegments(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("2 eggs, 1 cup oats, 1 apple")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Items) != 3 {
		t.Errorf("items = %d, want 3", len(result.Items))
	}
}

func TestParseDropsUnmatchedFoods(t *testing.T) {
	parser := newTestParser(t)

	result, err := parser.Parse("1 banana and 1 bowl of ambrosia")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("items = %d, want 1 (unmatched dropped)", len(result.Items))
	}
	if len(result.Unmatched) != 1 {
		t.Fatalf("unmatched = %v, want one entry", result.Unmatched)
	}
}

func TestParseAllUnmatched(t *testing.T) {
	parser := newTestParser(t)

	_, err := parser.Parse("1 flux capacitor")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Parse() error = %v, want ErrNotFound", err)
	}
}

func TestParseEmptyDescription(t *testing.T) {
	parser := newTestParser(t)

	for _, desc := range []string{"", "   ", "1 2 3", "and with ,"} {
		_, err := parser.Parse(desc)
		if !errors.Is(err, ErrNoItemsParsed) {
			t.Errorf("Parse(%q) error = %v, want ErrNoItemsParsed", desc, err)
		}
	}
}

func TestSplitSegments(t *testing.T) {
	segments := splitSegments("1 cup greek yogurt with honey, 2 eggs and toast")
	if len(segments) != 4 {
		t.Fatalf("segments = %d, want 4: %v", len(segments), segments)
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("greek yogurt"); got != "Greek Yogurt" {
		t.Errorf("TitleCase = %q, want Greek Yogurt", got)
	}
}
