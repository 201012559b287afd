package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/planner"
)

// EntryIcon picks the icon shown before an entry's heading.
func EntryIcon(e domain.ScheduleEntry) string {
	switch {
	case strings.Contains(e.Activity, "Break"):
		return "☕"
	case strings.Contains(e.Activity, "Meeting"):
		return "👥"
	default:
		return "📝"
	}
}

// FormatEntry renders one entry as a heading line and a "Why:" line.
func FormatEntry(e domain.ScheduleEntry) string {
	var b strings.Builder

	heading := fmt.Sprintf("%s %s : %s", EntryIcon(e), Bold(Placeholder(e.Time)), StyleFg.Render(Placeholder(e.Activity)))
	b.WriteString(heading)
	if e.Type != "" {
		b.WriteString("  ")
		b.WriteString(EntryTypeColor(e.Type).Render("[" + string(e.Type) + "]"))
	}
	b.WriteString("\n")
	b.WriteString("   ")
	b.WriteString(Dim("Why: "))
	b.WriteString(Placeholder(e.Reason))

	return b.String()
}

// FormatSchedule renders every entry in order.
func FormatSchedule(s domain.Schedule) string {
	if s.IsEmpty() {
		return Dim("No schedule generated yet.")
	}

	parts := make([]string, 0, len(s))
	for _, e := range s {
		parts = append(parts, FormatEntry(e))
	}
	return strings.Join(parts, "\n\n")
}

// FormatResult renders a generation result: the schedule in a box on
// success, the error otherwise.
func FormatResult(res planner.Result) string {
	if !res.OK() {
		return FormatGenerationError(res.Err)
	}

	title := "Your Schedule"
	if res.Mode == planner.ModeRecalculate {
		title = "Revised Schedule"
	}
	return RenderBox(title, FormatSchedule(res.Schedule))
}

// FormatGenerationError renders a failure with a hint matched to its kind.
func FormatGenerationError(err *planner.GenerationError) string {
	if err == nil {
		return ""
	}

	var label, hint string
	switch err.Kind {
	case planner.ErrKindService:
		label = "AI service error"
		hint = "Check your API key and network, then try again."
	case planner.ErrKindFormat:
		label = "Could not read the AI reply"
		hint = "The model did not return a JSON schedule. Try again."
	case planner.ErrKindSchema:
		label = "Incomplete schedule"
		hint = "Some entries were missing fields. Try again or disable strict entries."
	default:
		label = "Error"
	}

	var b strings.Builder
	b.WriteString(StyleRed.Render("✖ " + label))
	b.WriteString("\n  ")
	b.WriteString(err.Message)
	if hint != "" {
		b.WriteString("\n  ")
		b.WriteString(Dim(hint))
	}
	return b.String()
}

// FormatProfile renders the profile as a single line.
func FormatProfile(p domain.UserProfile) string {
	return fmt.Sprintf("%s %s   %s %s",
		Dim("Energy peak:"), StylePurple.Render(string(p.EnergyPeak)),
		Dim("Start:"), StyleFg.Render(p.Start))
}
