package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/alexanderramin/tempo/internal/logger"
	"github.com/google/uuid"
)

// Service turns a profile, tasks and an optional disruption into a schedule.
type Service interface {
	// Generate runs one generation call. It never returns an error: failures
	// are reported in Result.Err alongside the empty schedule.
	Generate(ctx context.Context, profile domain.UserProfile, tasks []domain.Task, disruption string) Result
}

// Option configures a Service.
type Option func(*service)

// WithStrictEntries makes entries missing any key fail the call.
func WithStrictEntries() Option {
	return func(s *service) { s.strict = true }
}

// WithRules replaces the normalization rules applied before decoding.
func WithRules(rules ...llm.NormalizeRule) Option {
	return func(s *service) { s.rules = rules }
}

// WithCallIDs overrides call ID generation.
func WithCallIDs(next func() string) Option {
	return func(s *service) { s.newID = next }
}

type service struct {
	client llm.LLMClient
	rules  []llm.NormalizeRule
	strict bool
	newID  func() string
}

// NewService creates a Service backed by an LLM client.
func NewService(client llm.LLMClient, opts ...Option) Service {
	s := &service{
		client: client,
		rules:  llm.DefaultRules,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Generate(ctx context.Context, profile domain.UserProfile, tasks []domain.Task, disruption string) (res Result) {
	mode := ModeFor(disruption)
	res = Result{
		CallID:   s.newID(),
		Mode:     mode,
		Schedule: domain.EmptySchedule(),
		Stage:    StageIdle,
	}

	defer func() {
		if r := recover(); r != nil {
			kind := ErrKindFormat
			if res.Stage != StageParsing {
				kind = ErrKindService
			}
			res = res.fail(kind, fmt.Errorf("unexpected failure: %v", r))
		}
		logOutcome(res)
	}()

	res.Stage = StageBuildingPrompt
	prompt := BuildPrompt(profile, tasks, disruption)

	res.Stage = StageAwaitingResponse
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		CallID:     res.CallID,
		Task:       taskFor(mode),
		UserPrompt: prompt,
	})
	if err != nil {
		return res.fail(ErrKindService, err)
	}

	res.Stage = StageParsing
	entries, err := llm.DecodeArray[domain.ScheduleEntry](llm.Normalize(resp.Text, s.rules...))
	if err != nil {
		return res.fail(ErrKindFormat, err)
	}

	schedule := domain.Schedule(entries)
	if s.strict {
		if err := checkEntries(schedule); err != nil {
			return res.fail(ErrKindSchema, err)
		}
	}

	res.Schedule = schedule
	res.Stage = StageDone
	return res
}

func taskFor(mode Mode) llm.TaskType {
	if mode == ModeRecalculate {
		return llm.TaskRecalculate
	}
	return llm.TaskGenerate
}

// checkEntries lists every entry that decoded with an empty key.
func checkEntries(schedule domain.Schedule) error {
	var problems []string
	for i, e := range schedule {
		if missing := e.MissingFields(); len(missing) > 0 {
			problems = append(problems, fmt.Sprintf("entry %d missing %s", i+1, strings.Join(missing, ", ")))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrIncompleteEntry, strings.Join(problems, "; "))
	}
	return nil
}

func logOutcome(res Result) {
	if res.OK() {
		logger.Info("schedule generated",
			"call_id", res.CallID,
			"mode", res.Mode,
			"entries", len(res.Schedule),
		)
		return
	}
	logger.Warn("schedule generation failed",
		"call_id", res.CallID,
		"mode", res.Mode,
		"stage", res.Stage,
		"error_kind", res.Err.Kind,
		"err", res.Err.Message,
	)
}

// Unavailable returns a Service whose every call fails with a service
// error wrapping err. It stands in when no model client could be built.
func Unavailable(err error) Service {
	return unavailable{err: err}
}

type unavailable struct {
	err error
}

func (u unavailable) Generate(_ context.Context, _ domain.UserProfile, _ []domain.Task, disruption string) Result {
	res := Result{
		CallID: uuid.NewString(),
		Mode:   ModeFor(disruption),
		Stage:  StageAwaitingResponse,
	}.fail(ErrKindService, u.err)
	logOutcome(res)
	return res
}
