package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/keyring"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plannerCall struct {
	profile    domain.UserProfile
	tasks      []domain.Task
	disruption string
}

// stubPlanner answers every call with respond and records its inputs.
type stubPlanner struct {
	respond func(disruption string) planner.Result
	calls   []plannerCall
}

func (p *stubPlanner) Generate(_ context.Context, profile domain.UserProfile, tasks []domain.Task, disruption string) planner.Result {
	p.calls = append(p.calls, plannerCall{profile: profile, tasks: tasks, disruption: disruption})
	return p.respond(disruption)
}

func sampleDay() domain.Schedule {
	return domain.Schedule{
		{Time: "09:00 - 11:00", Activity: "Capstone Coding", Reason: "High priority during morning peak", Type: domain.EntryWork},
		{Time: "11:00 - 11:30", Activity: "Laundry", Reason: "Low effort after deep work", Type: domain.EntryChore},
		{Time: "14:00 - 15:00", Activity: "Team Meeting", Reason: "Fixed at 14:00", Type: domain.EntryWork},
	}
}

func revisedDay() domain.Schedule {
	return domain.Schedule{
		{Time: "11:00 - 13:00", Activity: "Capstone Coding", Reason: "Still the top priority", Type: domain.EntryWork},
		{Time: "13:00 - 13:30", Activity: "Lunch Break", Reason: "Recharge", Type: domain.EntryBreak},
		{Time: "14:00 - 15:00", Activity: "Team Meeting", Reason: "Fixed at 14:00", Type: domain.EntryWork},
	}
}

func succeeding() *stubPlanner {
	return &stubPlanner{respond: func(disruption string) planner.Result {
		mode := planner.ModeFor(disruption)
		schedule := sampleDay()
		if mode == planner.ModeRecalculate {
			schedule = revisedDay()
		}
		return planner.Result{CallID: "call-1", Mode: mode, Schedule: schedule, Stage: planner.StageDone}
	}}
}

func failing(kind planner.ErrorKind, msg string) *stubPlanner {
	return &stubPlanner{respond: func(disruption string) planner.Result {
		return planner.Result{
			CallID:   "call-1",
			Mode:     planner.ModeFor(disruption),
			Schedule: domain.EmptySchedule(),
			Err:      &planner.GenerationError{Kind: kind, Message: msg},
			Stage:    planner.StageAwaitingResponse,
		}
	}}
}

// memKeys is an in-memory keyring.Store.
type memKeys map[string]string

func (m memKeys) Get(provider string) (string, error) {
	k, ok := m[provider]
	if !ok {
		return "", keyring.ErrNotFound
	}
	return k, nil
}

func (m memKeys) Set(provider, key string) error {
	m[provider] = key
	return nil
}

func (m memKeys) Delete(provider string) error {
	if _, ok := m[provider]; !ok {
		return keyring.ErrNotFound
	}
	delete(m, provider)
	return nil
}

func testApp(p planner.Service) *App {
	return &App{Planner: p, Keys: memKeys{}, Provider: "gemini"}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return stripANSI(buf.String()), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// --- root ---

func TestRootCmd_NonInteractiveShowsHelp(t *testing.T) {
	out, err := executeCmd(t, testApp(succeeding()))
	require.NoError(t, err)
	assert.Contains(t, out, "AI day planner")
	assert.Contains(t, out, "plan")
}

func TestSessionCmd_RequiresTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(succeeding()), "session")
	assert.ErrorIs(t, err, errNotInteractive)
}

// --- plan ---

func TestPlanCmd_PrintsSchedule(t *testing.T) {
	p := succeeding()
	out, err := executeCmd(t, testApp(p), "plan")

	require.NoError(t, err)
	assert.Contains(t, out, "YOUR SCHEDULE")
	assert.Contains(t, out, "📝 09:00 - 11:00 : Capstone Coding")
	assert.Contains(t, out, "👥 14:00 - 15:00 : Team Meeting")
	assert.Contains(t, out, "Why: Fixed at 14:00")

	require.Len(t, p.calls, 1)
	assert.Equal(t, domain.DefaultProfile(), p.calls[0].profile)
	assert.Equal(t, domain.DefaultTasks(), p.calls[0].tasks)
	assert.Empty(t, p.calls[0].disruption)
}

func TestPlanCmd_Disruption(t *testing.T) {
	p := succeeding()
	out, err := executeCmd(t, testApp(p), "plan", "--disruption", "I overslept until 11am")

	require.NoError(t, err)
	assert.Contains(t, out, "REVISED SCHEDULE")
	assert.Contains(t, out, "☕ 13:00 - 13:30 : Lunch Break")
	assert.Equal(t, "I overslept until 11am", p.calls[0].disruption)
}

func TestPlanCmd_ProfileFlags(t *testing.T) {
	p := succeeding()
	_, err := executeCmd(t, testApp(p), "plan", "--energy-peak", "Evening", "--start", "07:30")

	require.NoError(t, err)
	assert.Equal(t, domain.UserProfile{EnergyPeak: domain.EnergyEvening, Start: "07:30"}, p.calls[0].profile)
}

func TestPlanCmd_InvalidProfile(t *testing.T) {
	p := succeeding()
	_, err := executeCmd(t, testApp(p), "plan", "--start", "9am")

	assert.ErrorIs(t, err, domain.ErrInvalidProfile)
	assert.Empty(t, p.calls)
}

func TestPlanCmd_TasksFile(t *testing.T) {
	path := writeFile(t, "tasks.yaml", `
- task: Write report
  duration: 90 mins
  priority: High
- task: Standup
  fixed_time: "10:00"
  duration: 15 mins
`)
	p := succeeding()
	_, err := executeCmd(t, testApp(p), "plan", "--tasks", path)

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{
		{Name: "Write report", Duration: "90 mins", Priority: domain.PriorityHigh},
		{Name: "Standup", FixedTime: "10:00", Duration: "15 mins"},
	}, p.calls[0].tasks)
}

func TestPlanCmd_JSON(t *testing.T) {
	out, err := executeCmd(t, testApp(succeeding()), "plan", "--json")
	require.NoError(t, err)

	var got planOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "call-1", got.CallID)
	assert.Equal(t, planner.ModeFresh, got.Mode)
	assert.Equal(t, sampleDay(), got.Schedule)
	assert.Nil(t, got.Error)
}

func TestPlanCmd_FailureExitsNonZero(t *testing.T) {
	out, err := executeCmd(t, testApp(failing(planner.ErrKindService, "quota exhausted")), "plan")

	require.Error(t, err)
	var genErr *planner.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, planner.ErrKindService, genErr.Kind)
	assert.True(t, IsReported(err), "main must not print the error a second time")
	assert.Equal(t, 1, strings.Count(out, "quota exhausted"))
	assert.Contains(t, out, "AI service error")
	assert.Contains(t, out, "quota exhausted")
	assert.NotContains(t, out, "SCHEDULE")
}

func TestPlanCmd_FailureJSON(t *testing.T) {
	out, err := executeCmd(t, testApp(failing(planner.ErrKindFormat, "not an array")), "plan", "--json")
	require.Error(t, err)
	assert.True(t, IsReported(err))

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []any{}, got["schedule"])
	assert.Equal(t, map[string]any{"kind": "format", "message": "not an array"}, got["error"])
}

func TestPlanCmd_EditProfileNeedsTerminal(t *testing.T) {
	_, err := executeCmd(t, testApp(succeeding()), "plan", "--edit-profile")
	assert.ErrorIs(t, err, errNotInteractive)
	assert.False(t, IsReported(err))
}

// --- prompt / tasks ---

func TestPromptCmd_MatchesBuilder(t *testing.T) {
	out, err := executeCmd(t, testApp(succeeding()), "prompt", "--disruption", "Meeting moved to 15:00")

	require.NoError(t, err)
	assert.Equal(t, planner.BuildPrompt(domain.DefaultProfile(), domain.DefaultTasks(), "Meeting moved to 15:00"), out)
}

func TestTasksCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(succeeding()), "tasks")

	require.NoError(t, err)
	assert.Contains(t, out, "TASKS")
	assert.Contains(t, out, "Capstone Coding")
	assert.Contains(t, out, "Team Meeting")
	assert.Contains(t, out, "● Low")
}

func TestTasksCmd_InvalidFile(t *testing.T) {
	path := writeFile(t, "tasks.json", `[{"task":"","duration":"1 hour"}]`)
	_, err := executeCmd(t, testApp(succeeding()), "tasks", "--tasks", path)
	assert.ErrorIs(t, err, domain.ErrInvalidTask)
}

// --- key ---

func TestKeyCmd_Lifecycle(t *testing.T) {
	app := testApp(succeeding())

	out, err := executeCmd(t, app, "key", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "gemini ○ not stored")

	out, err = executeCmd(t, app, "key", "set", "--value", "secret")
	require.NoError(t, err)
	assert.Contains(t, out, "Stored API key for gemini")
	assert.Equal(t, memKeys{"gemini": "secret"}, app.Keys)

	out, err = executeCmd(t, app, "key", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "gemini ● stored")

	out, err = executeCmd(t, app, "key", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed API key for gemini")

	out, err = executeCmd(t, app, "key", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "No API key stored for gemini")
}

func TestKeyCmd_ProviderFlag(t *testing.T) {
	app := testApp(succeeding())

	_, err := executeCmd(t, app, "key", "set", "--provider", "openai", "--value", "sk-test")
	require.NoError(t, err)
	assert.Equal(t, memKeys{"openai": "sk-test"}, app.Keys)
}

func TestKeyCmd_SetNeedsValueWhenNotInteractive(t *testing.T) {
	_, err := executeCmd(t, testApp(succeeding()), "key", "set")
	assert.ErrorIs(t, err, errNotInteractive)
}
