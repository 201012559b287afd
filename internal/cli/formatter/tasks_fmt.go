package formatter

import (
	"fmt"

	"github.com/alexanderramin/tempo/internal/domain"
)

// FormatTasks renders the task list as a table.
func FormatTasks(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.")
	}

	rows := make([][]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", i+1)),
			Truncate(t.Name, 40),
			t.Duration,
			Placeholder(t.FixedTime),
			PriorityPill(t.Priority),
		})
	}
	return RenderTable([]string{"#", "TASK", "DURATION", "FIXED", "PRIORITY"}, rows)
}
