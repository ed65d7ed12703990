package llm

import (
	"context"
	"fmt"
	"net/http"

	"study-assistant/internal/config"
	"study-assistant/internal/domain"

	"github.com/tmc/langchaingo/llms/ollama"
)

// NewBackend builds the generation backend selected by cfg.Provider. The
// returned close function releases provider clients and is never nil.
func NewBackend(ctx context.Context, cfg config.LLMConfig) (domain.GenerationBackend, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Provider {
	case "ollama":
		model, err := ollama.New(
			ollama.WithServerURL(cfg.Ollama.ServerURL),
			ollama.WithModel(cfg.Ollama.Model),
			ollama.WithHTTPClient(&http.Client{}),
		)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewLangchainBackend(model, cfg.Ollama.Model, cfg.Temperature), noop, nil

	case "openai":
		backend, err := NewOpenAIBackend(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.Temperature)
		if err != nil {
			return nil, noop, err
		}
		return backend, noop, nil

	case "gemini":
		backend, err := NewGeminiBackend(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Temperature)
		if err != nil {
			return nil, noop, err
		}
		return backend, backend.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported llm provider: %q", cfg.Provider)
	}
}
