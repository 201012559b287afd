package llm

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskGenerate    TaskType = "generate"
	TaskRecalculate TaskType = "recalculate"
)

// Provider names a model service backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOllama    Provider = "ollama"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// defaultModels holds the model used when TEMPO_LLM_MODEL is unset.
var defaultModels = map[Provider]string{
	ProviderGemini:    "gemini-2.5-flash",
	ProviderOllama:    "llama3.2",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-sonnet-4-5",
}

// apiKeyEnv lists the provider-native key variables consulted after
// TEMPO_LLM_API_KEY.
var apiKeyEnv = map[Provider][]string{
	ProviderGemini:    {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	ProviderOpenAI:    {"OPENAI_API_KEY"},
	ProviderAnthropic: {"ANTHROPIC_API_KEY"},
}

// TaskConfig holds per-task LLM parameters.
// Nil Temperature and zero MaxTokens leave the provider defaults in place.
type TaskConfig struct {
	Temperature *float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider Provider
	LogCalls bool
	Endpoint string
	Model    string
	APIKey   string
	// TimeoutMs bounds a call when > 0. Zero leaves timeouts to the provider.
	TimeoutMs int
	Tasks     map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig targeting Gemini that leaves timeout,
// temperature and output length to the provider.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider: ProviderGemini,
		Model:    defaultModels[ProviderGemini],
		Tasks: map[TaskType]TaskConfig{
			TaskGenerate:    {},
			TaskRecalculate: {},
		},
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()

	if v := os.Getenv("TEMPO_LLM_PROVIDER"); v != "" {
		cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(v)))
		cfg.Model = defaultModels[cfg.Provider]
	}
	if v := os.Getenv("TEMPO_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("TEMPO_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("TEMPO_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("TEMPO_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.TimeoutMs = n
		}
	}

	cfg.APIKey = os.Getenv("TEMPO_LLM_API_KEY")
	for _, name := range apiKeyEnv[cfg.Provider] {
		if cfg.APIKey != "" {
			break
		}
		cfg.APIKey = os.Getenv(name)
	}

	if cfg.Provider == ProviderOllama && cfg.Endpoint == "" {
		cfg.Endpoint = "http://localhost:11434"
	}

	applyTaskTimeoutEnv(&cfg, TaskGenerate, "TEMPO_LLM_GENERATE_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskRecalculate, "TEMPO_LLM_RECALCULATE_TIMEOUT_MS")

	return cfg
}

// NeedsAPIKey reports whether the configured provider is a hosted service.
func (c LLMConfig) NeedsAPIKey() bool {
	return c.Provider != ProviderOllama
}

// Validate rejects configurations no client can be built from.
func (c LLMConfig) Validate() error {
	if _, ok := defaultModels[c.Provider]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.Provider)
	}
	if c.NeedsAPIKey() && strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w for provider %s", ErrMissingAPIKey, c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("no model configured for provider %s", c.Provider)
	}
	return nil
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
