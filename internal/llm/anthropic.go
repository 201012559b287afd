package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicMessages is the subset of the messages service the backend calls.
type anthropicMessages interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

type anthropicBackend struct {
	messages anthropicMessages
}

const defaultAnthropicMaxTokens = 2048

func newAnthropicBackend(cfg LLMConfig) *anthropicBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	ac := anthropic.NewClient(opts...)
	return &anthropicBackend{messages: &ac.Messages}
}

func (b *anthropicBackend) complete(ctx context.Context, c completion) (string, string, error) {
	maxTokens := c.MaxTokens
	if maxTokens <= 0 {
		// The messages API requires max_tokens.
		maxTokens = defaultAnthropicMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.Model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(c.Prompt)),
		},
	}
	if c.Temperature != nil {
		params.Temperature = anthropic.Float(*c.Temperature)
	}
	if c.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: c.System}}
	}

	msg, err := b.messages.New(ctx, params)
	if err != nil {
		return "", "", fmt.Errorf("anthropic messages: %w", err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	return text.String(), string(msg.Model), nil
}
