package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// openaiCompletions is the subset of the chat completions service the
// backend calls.
type openaiCompletions interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type openaiBackend struct {
	completions openaiCompletions
}

func newOpenAIBackend(cfg LLMConfig) *openaiBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithBaseURL(cfg.Endpoint))
	}
	oc := openai.NewClient(opts...)
	return &openaiBackend{completions: &oc.Chat.Completions}
}

func (b *openaiBackend) complete(ctx context.Context, c completion) (string, string, error) {
	var messages []openai.ChatCompletionMessageParamUnion
	if c.System != "" {
		messages = append(messages, openai.SystemMessage(c.System))
	}
	messages = append(messages, openai.UserMessage(c.Prompt))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.Model),
		Messages: messages,
	}
	if c.Temperature != nil {
		params.Temperature = openai.Float(*c.Temperature)
	}
	if c.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(c.MaxTokens))
	}

	resp, err := b.completions.New(ctx, params)
	if err != nil {
		return "", "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", resp.Model, nil
	}
	return resp.Choices[0].Message.Content, resp.Model, nil
}
