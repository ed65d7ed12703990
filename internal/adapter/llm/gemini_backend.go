package llm

import (
	"context"
	"fmt"

	"study-assistant/internal/domain"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiBackend completes prompts with a Gemini model. The client is created
// once and must be released with Close.
type GeminiBackend struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

var _ domain.GenerationBackend = (*GeminiBackend)(nil)

func NewGeminiBackend(ctx context.Context, apiKey, model string, temperature float64) (*GeminiBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is empty")
	}
	if model == "" {
		return nil, fmt.Errorf("gemini model name cannot be empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	m := cl.GenerativeModel(model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(float32(temperature)),
	}

	return &GeminiBackend{client: cl, model: m, name: model}, nil
}

func (b *GeminiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", domain.NewLLMServiceError(fmt.Errorf("gemini %s: %w", b.name, err))
	}
	txt := firstText(resp)
	if txt == "" {
		return "", domain.NewLLMServiceError(fmt.Errorf("gemini %s: empty response", b.name))
	}
	return txt, nil
}

func (b *GeminiBackend) Close() error {
	return b.client.Close()
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
