package llm

import (
	"context"
	"errors"
	"fmt"

	"study-assistant/internal/domain"
	"study-assistant/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LangchainBackend completes prompts with any langchaingo model. It is used
// for Ollama.
type LangchainBackend struct {
	model       llms.Model
	name        string
	temperature float64
}

var _ domain.GenerationBackend = (*LangchainBackend)(nil)

func NewLangchainBackend(model llms.Model, name string, temperature float64) *LangchainBackend {
	return &LangchainBackend{model: model, name: name, temperature: temperature}
}

func (b *LangchainBackend) Complete(ctx context.Context, prompt string) (string, error) {
	l := logger.Get()

	response, err := llms.GenerateFromSinglePrompt(ctx, b.model, prompt, llms.WithTemperature(b.temperature))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			l.Error("LLM request timed out", zap.String("model", b.name), zap.Error(err))
			return "", domain.NewLLMServiceError(fmt.Errorf("%s request timed out: %w", b.name, err))
		}
		l.Error("Failed to get response from LLM", zap.String("model", b.name), zap.Error(err))
		return "", domain.NewLLMServiceError(fmt.Errorf("%s call failed: %w", b.name, err))
	}

	l.Debug("LLM response received", zap.String("model", b.name), zap.Int("length", len(response)))
	return response, nil
}
