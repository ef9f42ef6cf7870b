package summarize

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/tharindu-dev/noteflow/internal/config"
)

// Endpoint is the external language model: one prompt in, one generated
// text out.
type Endpoint interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type implGemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates an Endpoint backed by the Gemini API. The API key is
// taken from the supplied config, never from process-wide state.
func NewGemini(ctx context.Context, cfg config.Gemini) (Endpoint, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &implGemini{client: client, model: cfg.Model}, nil
}

func (g *implGemini) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr[float32](0.3),
		})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
