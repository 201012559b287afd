package llm

import "errors"

var (
	// ErrProviderUnavailable indicates the model service is unreachable.
	ErrProviderUnavailable = errors.New("model service unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrServiceFailure covers every other failed call: auth, quota,
	// rejected requests and remote errors.
	ErrServiceFailure = errors.New("model service call failed")

	// ErrMissingAPIKey indicates a hosted provider was selected without a key.
	ErrMissingAPIKey = errors.New("missing api key")

	// ErrUnknownProvider indicates TEMPO_LLM_PROVIDER names no backend.
	ErrUnknownProvider = errors.New("unknown llm provider")

	// ErrInvalidOutput indicates the LLM response could not be decoded
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrNotArray indicates the response decoded to something other than
	// a JSON array at the top level.
	ErrNotArray = errors.New("llm output is not a JSON array")
)
