package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiModels is the subset of *genai.Models the backend calls.
type geminiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type geminiBackend struct {
	models geminiModels
}

func newGeminiBackend(ctx context.Context, cfg LLMConfig) (*geminiBackend, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiBackend{models: gc.Models}, nil
}

func (b *geminiBackend) complete(ctx context.Context, c completion) (string, string, error) {
	gcfg := &genai.GenerateContentConfig{}
	if c.Temperature != nil {
		gcfg.Temperature = genai.Ptr(float32(*c.Temperature))
	}
	if c.MaxTokens > 0 {
		gcfg.MaxOutputTokens = int32(c.MaxTokens)
	}
	if c.System != "" {
		gcfg.SystemInstruction = genai.NewContentFromText(c.System, genai.RoleUser)
	}

	res, err := b.models.GenerateContent(ctx, c.Model, genai.Text(c.Prompt), gcfg)
	if err != nil {
		return "", "", fmt.Errorf("gemini generate content: %w", err)
	}
	return res.Text(), c.Model, nil
}
