package llm

import (
	"github.com/charmbracelet/log"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	CallID    string
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
	// EmptyText marks a successful call whose reply was blank. The reply is
	// still returned to the caller, which rejects it when decoding.
	EmptyText bool
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a structured logger.
type LogObserver struct {
	logger *log.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	if o.logger == nil {
		return
	}
	status := "ok"
	if event.EmptyText {
		status = "ok:empty"
	}
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	o.logger.Info("llm_call",
		"call_id", event.CallID,
		"task", event.Task,
		"provider", event.Provider,
		"model", event.Model,
		"latency_ms", event.LatencyMs,
		"status", status,
	)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
