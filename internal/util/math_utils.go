package util

import (
	"fmt"
	"math"
)

// CosineSimilarity returns the cosine of the angle between two embeddings,
// clamped to [-1, 1]. A zero vector has similarity 0 with everything.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, fmt.Errorf("input vectors cannot be empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions do not match: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return math.Max(-1, math.Min(1, dot/(math.Sqrt(normA)*math.Sqrt(normB)))), nil
}
