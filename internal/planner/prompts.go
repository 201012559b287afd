package planner

import (
	"encoding/json"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
)

// Mode selects between planning a day from scratch and revising it after
// a disruption.
type Mode string

const (
	ModeFresh       Mode = "fresh"
	ModeRecalculate Mode = "recalculate"
)

// ModeFor returns ModeRecalculate when disruption has any non-space text.
func ModeFor(disruption string) Mode {
	if strings.TrimSpace(disruption) == "" {
		return ModeFresh
	}
	return ModeRecalculate
}

// personaPrompt opens every prompt.
const personaPrompt = `You are an elite Productivity AI Agent.
You plan one day for one user as consecutive time blocks.`

const freshDirective = `Create a fresh optimized schedule.`

// recalculateDirective follows the quoted disruption text.
const recalculateDirective = `RECALCULATE the schedule.
Revise the existing plan around this event: keep what still fits, move what no longer fits,
and shorten or drop Low priority work before High priority work.`

const schedulingRules = `SCHEDULING RULES:
- A task with a fixed_time must start exactly at that time; never move it.
- Do not schedule anything before the profile start time.
- Place High priority work inside the user's energy peak when possible.
- Add short breaks between long blocks.`

// outputFormatPrompt pins the reply to a bare JSON array of entries.
const outputFormatPrompt = `OUTPUT FORMAT:
Return ONLY a valid JSON array. No markdown, no code fences, no text before or after the array.
Each element must be an object with exactly these keys: "time", "activity", "reason", "type".
[
  { "time": "HH:MM - HH:MM", "activity": "Task Name", "reason": "Short logic", "type": "Work/Break/Chore" }
]`

// BuildPrompt renders the model prompt for one generation call. The output
// depends only on its arguments.
func BuildPrompt(profile domain.UserProfile, tasks []domain.Task, disruption string) string {
	if tasks == nil {
		tasks = []domain.Task{}
	}

	var b strings.Builder

	b.WriteString(personaPrompt)
	b.WriteString("\n\n")

	b.WriteString("USER PROFILE: ")
	b.WriteString(compactJSON(profile))
	b.WriteString("\n")
	b.WriteString("TASKS: ")
	b.WriteString(compactJSON(tasks))
	b.WriteString("\n\n")

	b.WriteString("CONTEXT CHANGE:\n")
	if ModeFor(disruption) == ModeRecalculate {
		b.WriteString(`The user reported this issue: "`)
		b.WriteString(disruption)
		b.WriteString(`". `)
		b.WriteString(recalculateDirective)
	} else {
		b.WriteString(freshDirective)
	}
	b.WriteString("\n\n")

	b.WriteString(schedulingRules)
	b.WriteString("\n\n")

	b.WriteString(outputFormatPrompt)
	b.WriteString("\n")

	return b.String()
}

// compactJSON marshals values made only of strings and slices of them, for
// which encoding cannot fail.
func compactJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(data)
}
