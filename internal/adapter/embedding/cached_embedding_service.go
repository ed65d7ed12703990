package embedding

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"
	"time"

	"study-assistant/internal/cache"
	"study-assistant/internal/config"
	"study-assistant/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultEmbeddingTTL = 168 * time.Hour

// CachedEmbeddingService wraps a langchaingo embedder with a content-addressed
// cache. Concurrent requests for the same text share one embedder call.
type CachedEmbeddingService struct {
	embedder embeddings.Embedder
	source   string
	model    string
	cache    domain.Cache
	ttl      time.Duration
	sfGroup  singleflight.Group
	logger   *zap.Logger
}

var _ domain.EmbeddingService = (*CachedEmbeddingService)(nil)

func newCachedEmbeddingService(embedder embeddings.Embedder, source, model string, c domain.Cache, ttl time.Duration, logger *zap.Logger) *CachedEmbeddingService {
	if ttl <= 0 {
		ttl = DefaultEmbeddingTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedEmbeddingService{
		embedder: embedder,
		source:   source,
		model:    model,
		cache:    c,
		ttl:      ttl,
		logger:   logger,
	}
}

// NewEmbeddingService builds the service selected by cfg.Embedding.Source.
// A nil cache disables caching.
func NewEmbeddingService(cfg *config.Config, c domain.Cache, logger *zap.Logger) (*CachedEmbeddingService, error) {
	ttl := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Embedding, DefaultEmbeddingTTL)
	switch cfg.Embedding.Source {
	case "ollama":
		return NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model, c, ttl, logger)
	case "openai":
		return NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, c, ttl, logger)
	default:
		return nil, fmt.Errorf("unsupported embedding source: %q", cfg.Embedding.Source)
	}
}

func (s *CachedEmbeddingService) cacheKey(text string) string {
	return cache.GenerateCacheKey("embedding", s.source, cache.HashText(text), s.model)
}

// EmbedQuery embeds a single text, consulting the cache first.
func (s *CachedEmbeddingService) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("input text cannot be empty for embedding")
	}

	key := s.cacheKey(text)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			vec, decodeErr := decodeVector(cached)
			if decodeErr == nil {
				return vec, nil
			}
			s.logger.Warn("Failed to decode cached embedding", zap.String("cacheKey", key), zap.Error(decodeErr))
		case !errors.Is(err, domain.ErrCacheMiss):
			s.logger.Warn("Embedding cache read failed", zap.String("cacheKey", key), zap.Error(err))
		}
	}

	res, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
		vec, fetchErr := s.embedder.EmbedQuery(ctx, text)
		if fetchErr != nil {
			return nil, fmt.Errorf("failed to generate embedding using %s: %w", s.source, fetchErr)
		}
		if vec == nil {
			return nil, fmt.Errorf("received nil embedding from %s without error", s.source)
		}
		s.store(ctx, key, vec)
		return vec, nil
	})
	if err != nil {
		return nil, err
	}

	vec, ok := res.([]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight.Do for %s embedding: %T", s.source, res)
	}
	return vec, nil
}

// EmbedDocuments embeds texts in order. Cached vectors are reused and only the
// misses are sent to the embedder, in one batch.
func (s *CachedEmbeddingService) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	if len(texts) == 0 {
		return out, nil
	}

	keys := make([]string, len(texts))
	for i, t := range texts {
		keys[i] = s.cacheKey(t)
	}

	if s.cache != nil {
		hits, err := s.cache.GetMany(ctx, keys)
		if err != nil {
			s.logger.Warn("Embedding cache batch read failed", zap.Int("keys", len(keys)), zap.Error(err))
		}
		for i, key := range keys {
			raw, ok := hits[key]
			if !ok {
				continue
			}
			if vec, decodeErr := decodeVector(raw); decodeErr == nil {
				out[i] = vec
			}
		}
	}

	var missIdx []int
	var missTexts []string
	for i, vec := range out {
		if vec == nil {
			missIdx = append(missIdx, i)
			missTexts = append(missTexts, texts[i])
		}
	}
	if len(missTexts) == 0 {
		return out, nil
	}

	vecs, err := s.embedder.EmbedDocuments(ctx, missTexts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed %d documents using %s: %w", len(missTexts), s.source, err)
	}
	if len(vecs) != len(missTexts) {
		return nil, fmt.Errorf("%s returned %d embeddings for %d documents", s.source, len(vecs), len(missTexts))
	}

	for j, i := range missIdx {
		out[i] = vecs[j]
		s.store(ctx, keys[i], vecs[j])
	}
	s.logger.Debug("Embedded documents",
		zap.String("source", s.source),
		zap.Int("cached", len(texts)-len(missTexts)),
		zap.Int("embedded", len(missTexts)))
	return out, nil
}

// store caches a vector. Failures only cost a future recomputation.
func (s *CachedEmbeddingService) store(ctx context.Context, key string, vec []float32) {
	if s.cache == nil {
		return
	}
	encoded, err := encodeVector(vec)
	if err != nil {
		s.logger.Warn("Failed to gob encode embedding", zap.String("cacheKey", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, encoded, s.ttl); err != nil {
		s.logger.Warn("Failed to cache embedding", zap.String("cacheKey", key), zap.Error(err))
	}
}

func encodeVector(vec []float32) (string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(vec); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func decodeVector(raw string) ([]float32, error) {
	var vec []float32
	if err := gob.NewDecoder(bytes.NewReader([]byte(raw))).Decode(&vec); err != nil {
		return nil, err
	}
	return vec, nil
}
