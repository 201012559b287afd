package domain

import (
	"fmt"
	"strings"
)

// Task is one item the user wants scheduled. A task is either flexible
// (Duration + Priority) or fixed-time (FixedTime + Duration). Empty fields
// are omitted so each shape serializes exactly as the model expects.
type Task struct {
	Name      string   `json:"task" yaml:"task"`
	FixedTime string   `json:"fixed_time,omitempty" yaml:"fixed_time,omitempty"`
	Duration  string   `json:"duration" yaml:"duration"`
	Priority  Priority `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// IsFixed reports whether the task is pinned to a start time.
func (t Task) IsFixed() bool {
	return t.FixedTime != ""
}

// Validate checks a task loaded from a file or entered by hand.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTask)
	}
	if strings.TrimSpace(t.Duration) == "" {
		return fmt.Errorf("%w: %s: duration is required", ErrInvalidTask, t.Name)
	}
	if t.IsFixed() {
		if err := ValidateClock(t.FixedTime); err != nil {
			return fmt.Errorf("%w: %s: fixed_time: %v", ErrInvalidTask, t.Name, err)
		}
		if t.Priority != "" {
			return fmt.Errorf("%w: %s: fixed-time tasks take no priority", ErrInvalidTask, t.Name)
		}
		return nil
	}
	if !ValidPriorities[t.Priority] {
		return fmt.Errorf("%w: %s: priority %q", ErrInvalidTask, t.Name, t.Priority)
	}
	return nil
}

// ValidateTasks validates every task and rejects an empty list.
func ValidateTasks(tasks []Task) error {
	if len(tasks) == 0 {
		return fmt.Errorf("%w: no tasks", ErrInvalidTask)
	}
	for i, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	return nil
}

// DefaultTasks returns the task list every session starts with.
func DefaultTasks() []Task {
	return []Task{
		{Name: "Capstone Coding", Duration: "2 hours", Priority: PriorityHigh},
		{Name: "Laundry", Duration: "30 mins", Priority: PriorityLow},
		{Name: "Team Meeting", FixedTime: "14:00", Duration: "1 hour"},
	}
}
