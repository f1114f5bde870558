// ABOUTME: Tests for hash-based embeddings
// ABOUTME: Verifies determinism, dimension, value range, and normalization
package rag

import (
	"math"
	"testing"
)

func TestHashEmbedDeterministic(t *testing.T) {
	a := HashEmbed("grilled chicken salad")
	b := HashEmbed("grilled chicken salad")

	if len(a) != EmbedDim {
		t.Fatalf("dimension = %d, want %d", len(a), EmbedDim)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("embedding not deterministic at dim %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestHashEmbedValueRange(t *testing.T) {
	vec := HashEmbed("overnight oats")
	for i, v := range vec {
		if v < -1 || v > 1 {
			t.Errorf("dim %d = %v, want within [-1, 1]", i, v)
		}
	}
}

func TestHashEmbedDistinctTexts(t *testing.T) {
	a := HashEmbed("pancakes")
	b := HashEmbed("lentil curry")

	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("different texts should produce different embeddings")
	}
}

func TestNormalizeUnitNorm(t *testing.T) {
	vec := Normalize(HashEmbed("beef stir fry"))

	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if math.Abs(math.Sqrt(sum)-1.0) > 1e-9 {
		t.Errorf("norm = %v, want 1.0", math.Sqrt(sum))
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	zero := make([]float64, 4)
	out := Normalize(zero)

	for i, v := range out {
		if v != 0 {
			t.Errorf("dim %d = %v, want 0 (zero vector maps to itself)", i, v)
		}
	}
}

func TestDot(t *testing.T) {
	a := []float64{1, 0, 0.5}
	b := []float64{2, 3, 4}

	if got := Dot(a, b); got != 4 {
		t.Errorf("Dot = %v, want 4", got)
	}
}
