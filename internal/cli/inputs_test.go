package cli

import (
	"regexp"
	"testing"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestParseTasks_JSON(t *testing.T) {
	tasks, err := parseTasks([]byte(`[
  {"task": "Capstone Coding", "duration": "2 hours", "priority": "High"},
  {"task": "Team Meeting", "fixed_time": "14:00", "duration": "1 hour"}
]`))

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{
		{Name: "Capstone Coding", Duration: "2 hours", Priority: domain.PriorityHigh},
		{Name: "Team Meeting", FixedTime: "14:00", Duration: "1 hour"},
	}, tasks)
}

func TestParseTasks_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a list", `task: Laundry`},
		{"empty list", `[]`},
		{"bad fixed time", `[{"task":"Standup","fixed_time":"10am","duration":"15 mins"}]`},
		{"bad priority", `[{"task":"Laundry","duration":"30 mins","priority":"Urgent"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTasks([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadTasks_DefaultsWithoutPath(t *testing.T) {
	tasks, err := loadTasks("")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTasks(), tasks)
}

func TestLoadTasks_MissingFile(t *testing.T) {
	_, err := loadTasks("/nonexistent/tasks.yaml")
	assert.ErrorContains(t, err, "reading tasks file")
}

func TestProfileFlags_Apply(t *testing.T) {
	p, err := profileFlags{}.apply(domain.DefaultProfile())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultProfile(), p)

	p, err = profileFlags{energyPeak: "Night", start: "22:00"}.apply(domain.DefaultProfile())
	require.NoError(t, err)
	assert.Equal(t, domain.UserProfile{EnergyPeak: domain.EnergyNight, Start: "22:00"}, p)

	_, err = profileFlags{energyPeak: "Dawn"}.apply(domain.DefaultProfile())
	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
}
