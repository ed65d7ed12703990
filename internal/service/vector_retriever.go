package service

import (
	"context"
	"fmt"
	"sort"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"
	"study-assistant/internal/util"

	"go.uber.org/zap"
)

// VectorRetriever ranks a subject's chunks by cosine similarity to the topic.
// The search is brute force over every stored embedding.
type VectorRetriever struct {
	subjectID string
	chunks    domain.ChunkRepository
	embedder  domain.EmbeddingService
}

var _ domain.ContextSupplier = (*VectorRetriever)(nil)

func NewVectorRetriever(subjectID string, chunks domain.ChunkRepository, embedder domain.EmbeddingService) *VectorRetriever {
	return &VectorRetriever{subjectID: subjectID, chunks: chunks, embedder: embedder}
}

type scoredChunk struct {
	content string
	score   float64
}

// Retrieve returns up to depth chunk texts, most similar first. A subject
// without chunks yields an empty slice.
func (r *VectorRetriever) Retrieve(ctx context.Context, topic string, depth int) ([]string, error) {
	if depth <= 0 {
		return []string{}, nil
	}
	chunks, err := r.chunks.ListChunksBySubject(ctx, r.subjectID)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return []string{}, nil
	}

	query, err := r.embedder.EmbedQuery(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("embedding topic: %w", err)
	}

	scored := make([]scoredChunk, 0, len(chunks))
	for _, c := range chunks {
		score, err := util.CosineSimilarity(query, c.Embedding)
		if err != nil {
			logger.Get().Warn("Skipping chunk with incompatible embedding",
				zap.String("subject_id", r.subjectID), zap.String("chunk_id", c.ID), zap.Error(err))
			continue
		}
		scored = append(scored, scoredChunk{content: c.Content, score: score})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

	if len(scored) > depth {
		scored = scored[:depth]
	}
	out := make([]string, len(scored))
	for i, sc := range scored {
		out[i] = sc.content
	}
	return out, nil
}
