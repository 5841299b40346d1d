package domain

import (
	"fmt"
	"math"
)

// Cosine computes the cosine similarity between two equal-length vectors:
// dot product over the product of Euclidean norms. Conceptual range is [-1, 1];
// normalized sentence embeddings land in [0, 1].
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		av, bv := float64(a[i]), float64(b[i])
		dot += av * bv
		normA += av * av
		normB += bv * bv
	}

	if normA == 0 || normB == 0 {
		return 0, ErrZeroVector
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// RoundPercent converts a similarity score to the 0-100 integer form used in storage.
func RoundPercent(score float64) int {
	return int(math.Round(score * 100))
}
