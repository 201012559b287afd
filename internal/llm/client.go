package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	CallID       string
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response. It makes
	// exactly one call to the model service.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// completion is what every backend receives once task defaults are applied.
type completion struct {
	Model       string
	System      string
	Prompt      string
	// Temperature is nil and MaxTokens zero when the provider's own
	// defaults apply.
	Temperature *float64
	MaxTokens   int
}

// backend performs one raw call against a provider API and returns the
// response text and the model that produced it.
type backend interface {
	complete(ctx context.Context, c completion) (text string, model string, err error)
}

// client applies configuration, timeouts, error classification and
// observation around a provider backend.
type client struct {
	cfg      LLMConfig
	backend  backend
	observer Observer
}

// NewClient builds the LLMClient for cfg.Provider.
func NewClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		b   backend
		err error
	)
	switch cfg.Provider {
	case ProviderGemini:
		b, err = newGeminiBackend(ctx, cfg)
	case ProviderOllama:
		b = newOllamaBackend(cfg)
	case ProviderOpenAI:
		b = newOpenAIBackend(cfg)
	case ProviderAnthropic:
		b = newAnthropicBackend(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return newClient(cfg, b, observer), nil
}

func newClient(cfg LLMConfig, b backend, observer Observer) *client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &client{cfg: cfg, backend: b, observer: observer}
}

func (c *client) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := c.cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	if timeoutMs := c.cfg.TaskTimeout(req.Task); timeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutMs)*time.Millisecond)
		defer cancel()
	}

	text, model, err := c.backend.complete(ctx, completion{
		Model:       c.cfg.Model,
		System:      req.SystemPrompt,
		Prompt:      req.UserPrompt,
		Temperature: temp,
		MaxTokens:   maxTok,
	})
	if model == "" {
		model = c.cfg.Model
	}
	latency := time.Since(start).Milliseconds()

	event := LLMCallEvent{
		CallID:    req.CallID,
		Task:      req.Task,
		Provider:  c.cfg.Provider,
		Model:     model,
		LatencyMs: latency,
		Success:   err == nil,
		EmptyText: err == nil && strings.TrimSpace(text) == "",
	}

	if err != nil {
		err = classify(ctx, err)
		event.ErrorCode = errorCode(err)
		c.observer.OnCallComplete(event)
		return nil, err
	}

	c.observer.OnCallComplete(event)
	return &GenerateResponse{
		Text:      text,
		Model:     model,
		LatencyMs: latency,
	}, nil
}

// classify maps a raw backend error onto the package sentinels.
func classify(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return err
	case errors.Is(ctx.Err(), context.DeadlineExceeded), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	case isConnectionError(err):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrServiceFailure, err)
	}
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrMissingAPIKey):
		return "NO_API_KEY"
	default:
		return "SERVICE"
	}
}
