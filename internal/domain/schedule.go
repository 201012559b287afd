package domain

import "strings"

// ScheduleEntry is one time block of a generated schedule.
type ScheduleEntry struct {
	Time     string    `json:"time"`
	Activity string    `json:"activity"`
	Reason   string    `json:"reason"`
	Type     EntryType `json:"type"`
}

// MissingFields returns the JSON keys that decoded empty.
func (e ScheduleEntry) MissingFields() []string {
	var missing []string
	if e.Time == "" {
		missing = append(missing, "time")
	}
	if e.Activity == "" {
		missing = append(missing, "activity")
	}
	if e.Reason == "" {
		missing = append(missing, "reason")
	}
	if e.Type == "" {
		missing = append(missing, "type")
	}
	return missing
}

// StartTime returns the part of Time before the range separator.
// "09:00 - 10:00" yields "09:00".
func (e ScheduleEntry) StartTime() string {
	start, _, _ := strings.Cut(e.Time, "-")
	return strings.TrimSpace(start)
}

// Schedule is the ordered list of entries as emitted by the model.
type Schedule []ScheduleEntry

// EmptySchedule returns the canonical empty schedule. It is non-nil so it
// encodes as [] rather than null.
func EmptySchedule() Schedule {
	return Schedule{}
}

// IsEmpty reports whether the schedule has no entries.
func (s Schedule) IsEmpty() bool {
	return len(s) == 0
}
