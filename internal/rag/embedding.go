// ABOUTME: Deterministic hash-based embeddings for recipe retrieval
// ABOUTME: SHA-256 digest bytes cycled across 128 dimensions, L2 normalized
package rag

import (
	"crypto/sha256"
	"math"
)

// EmbedDim is the fixed embedding dimension
const EmbedDim = 128

// HashEmbed maps text to a deterministic EmbedDim-length vector. Each
// dimension takes a byte of the SHA-256 digest (cycling when the digest
// is shorter than the dimension count), rescaled from 0..255 to [-1, 1].
// This is a content-similarity proxy, not semantic search: it exists to
// exercise the retrieval contract and is replaceable by a real embedding
// model without changing the index interface.
func HashEmbed(text string) []float64 {
	digest := sha256.Sum256([]byte(text))

	vec := make([]float64, EmbedDim)
	for i := 0; i < EmbedDim; i++ {
		b := digest[i%len(digest)]
		vec[i] = (float64(b)/255.0)*2 - 1
	}
	return vec
}

// Normalize scales vec to unit L2 norm. A zero vector maps to itself
// (zero norm is treated as 1.0 to avoid division by zero).
func Normalize(vec []float64) []float64 {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1.0
	}

	out := make([]float64, len(vec))
	for i, v := range vec {
		out[i] = v / norm
	}
	return out
}

// Dot returns the dot product of two equal-length vectors
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// EmbedText returns the unit-norm hash embedding for text
func EmbedText(text string) []float64 {
	return Normalize(HashEmbed(text))
}
