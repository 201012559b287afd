// Package session holds the planning state of one interactive session.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/planner"
)

var (
	// ErrNoSchedule is returned by Recalculate before any schedule exists.
	ErrNoSchedule = errors.New("no schedule to recalculate")
	// ErrNoDisruption is returned by Recalculate for a blank disruption.
	ErrNoDisruption = errors.New("describe what changed before recalculating")
)

// State is owned by a single presentation loop and is not safe for
// concurrent use.
type State struct {
	Profile  domain.UserProfile
	Tasks    []domain.Task
	Schedule domain.Schedule
	// Last is the outcome of the most recent generation call, nil before the
	// first one.
	Last *planner.Result
}

// New starts a session with no schedule.
func New(profile domain.UserProfile, tasks []domain.Task) *State {
	return &State{
		Profile:  profile,
		Tasks:    tasks,
		Schedule: domain.EmptySchedule(),
	}
}

// HasSchedule reports whether a non-empty schedule is held.
func (s *State) HasSchedule() bool {
	return !s.Schedule.IsEmpty()
}

// Plan runs a fresh generation call and applies its result.
func (s *State) Plan(ctx context.Context, gen planner.Service) planner.Result {
	res := gen.Generate(ctx, s.Profile, s.Tasks, "")
	s.Apply(res)
	return res
}

// Recalculate revises the current schedule around disruption.
func (s *State) Recalculate(ctx context.Context, gen planner.Service, disruption string) (planner.Result, error) {
	if err := s.CanRecalculate(disruption); err != nil {
		return planner.Result{}, err
	}
	res := gen.Generate(ctx, s.Profile, s.Tasks, disruption)
	s.Apply(res)
	return res, nil
}

// CanRecalculate reports why a recalculation with disruption cannot run.
func (s *State) CanRecalculate(disruption string) error {
	if !s.HasSchedule() {
		return ErrNoSchedule
	}
	if strings.TrimSpace(disruption) == "" {
		return ErrNoDisruption
	}
	return nil
}

// Apply records res. A successful result replaces the schedule wholesale;
// a failed one leaves the previous schedule in place.
func (s *State) Apply(res planner.Result) {
	s.Last = &res
	if res.OK() {
		s.Schedule = res.Schedule
	}
}
