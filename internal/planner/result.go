package planner

import (
	"errors"

	"github.com/alexanderramin/tempo/internal/domain"
)

// ErrorKind classifies why a generation call failed.
type ErrorKind string

const (
	// ErrKindService: the model service call itself failed.
	ErrKindService ErrorKind = "service"
	// ErrKindFormat: the reply was not a JSON array after normalization.
	ErrKindFormat ErrorKind = "format"
	// ErrKindSchema: strict mode found entries missing required keys.
	ErrKindSchema ErrorKind = "schema"
)

// ErrIncompleteEntry is wrapped by schema failures in strict mode.
var ErrIncompleteEntry = errors.New("schedule entry missing required keys")

// Stage is a step of the per-call state machine.
type Stage string

const (
	StageIdle             Stage = "idle"
	StageBuildingPrompt   Stage = "building_prompt"
	StageAwaitingResponse Stage = "awaiting_response"
	StageParsing          Stage = "parsing"
	StageDone             Stage = "done"
)

// GenerationError is the failure half of a Result.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *GenerationError) Error() string {
	return string(e.Kind) + " error: " + e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Result is the outcome of one generation call. Exactly one of Schedule
// (non-empty or empty on success) and Err describes it: when Err is set,
// Schedule is the canonical empty schedule.
type Result struct {
	CallID   string
	Mode     Mode
	Schedule domain.Schedule
	Err      *GenerationError
	// Stage is StageDone on success, otherwise the stage that failed.
	Stage Stage
}

// OK reports whether the call produced a schedule.
func (r Result) OK() bool {
	return r.Err == nil
}

func (r Result) fail(kind ErrorKind, err error) Result {
	r.Schedule = domain.EmptySchedule()
	r.Err = &GenerationError{Kind: kind, Message: err.Error(), Err: err}
	return r
}
