package llm

import (
	"context"
	"fmt"

	"study-assistant/internal/domain"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend completes prompts through the OpenAI chat completions API.
type OpenAIBackend struct {
	client      *openai.Client
	model       string
	temperature float32
}

var _ domain.GenerationBackend = (*OpenAIBackend)(nil)

func NewOpenAIBackend(apiKey, model string, temperature float64) (*OpenAIBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is empty")
	}
	return newOpenAIBackend(openai.DefaultConfig(apiKey), model, temperature), nil
}

func newOpenAIBackend(cfg openai.ClientConfig, model string, temperature float64) *OpenAIBackend {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIBackend{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: float32(temperature),
	}
}

func (b *OpenAIBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       b.model,
			Temperature: b.temperature,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a careful study assistant. Follow the output format exactly.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
		},
	)
	if err != nil {
		return "", domain.NewLLMServiceError(fmt.Errorf("openai chat completion: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", domain.NewLLMServiceError(fmt.Errorf("openai returned no choices"))
	}
	return resp.Choices[0].Message.Content, nil
}
