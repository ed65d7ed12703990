package domain

import (
	"context"
)

// EmbeddingService turns text into vectors for similarity search.
type EmbeddingService interface {
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}
