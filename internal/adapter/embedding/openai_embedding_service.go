package embedding

import (
	"fmt"
	"time"

	"study-assistant/internal/domain"

	"github.com/tmc/langchaingo/embeddings"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

// NewOpenAIEmbeddingService embeds with the OpenAI embeddings API.
func NewOpenAIEmbeddingService(apiKey, modelName string, c domain.Cache, ttl time.Duration, logger *zap.Logger) (*CachedEmbeddingService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai API key cannot be empty")
	}
	if modelName == "" {
		modelName = "text-embedding-3-small"
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(apiKey),
		openaiLLM.WithEmbeddingModel(modelName),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LangchainGo OpenAI LLM client for embedder: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create generic embedder from OpenAI LLM: %w", err)
	}

	return newCachedEmbeddingService(embedder, "openai", modelName, c, ttl, logger), nil
}
