package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	calls    int
	last     llm.GenerateRequest
	panicMsg string
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.calls++
	m.last = req
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gemini-2.5-flash"}, nil
}

const capstoneJSON = `[{"time":"09:00 - 10:00","activity":"Capstone Coding","reason":"High priority, morning energy peak","type":"Work"}]`

const dayJSON = `[
  {"time":"09:00 - 11:00","activity":"Capstone Coding","reason":"High priority during morning peak","type":"Work"},
  {"time":"11:00 - 11:30","activity":"Laundry","reason":"Low effort after deep work","type":"Chore"},
  {"time":"14:00 - 15:00","activity":"Team Meeting","reason":"Fixed at 14:00","type":"Work"}
]`

func fixedIDs() Option {
	return WithCallIDs(func() string { return "call-1" })
}

func TestGenerate_WellFormed(t *testing.T) {
	client := &mockLLMClient{response: capstoneJSON}
	svc := NewService(client, fixedIDs())

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.True(t, res.OK())
	assert.Equal(t, "call-1", res.CallID)
	assert.Equal(t, ModeFresh, res.Mode)
	assert.Equal(t, StageDone, res.Stage)
	assert.Equal(t, domain.Schedule{{
		Time:     "09:00 - 10:00",
		Activity: "Capstone Coding",
		Reason:   "High priority, morning energy peak",
		Type:     domain.EntryWork,
	}}, res.Schedule)
}

func TestGenerate_FencedEqualsUnfenced(t *testing.T) {
	plain := NewService(&mockLLMClient{response: capstoneJSON}).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")
	fenced := NewService(&mockLLMClient{response: "```json\n" + capstoneJSON + "\n```"}).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.True(t, plain.OK())
	require.True(t, fenced.OK())
	assert.Equal(t, plain.Schedule, fenced.Schedule)
}

func TestGenerate_MalformedIsFormatError(t *testing.T) {
	svc := NewService(&mockLLMClient{response: "Sure! Here's your schedule: [broken"})

	var res Result
	require.NotPanics(t, func() {
		res = svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")
	})

	require.False(t, res.OK())
	assert.Equal(t, ErrKindFormat, res.Err.Kind)
	assert.Equal(t, StageParsing, res.Stage)
	assert.NotNil(t, res.Schedule)
	assert.Empty(t, res.Schedule)
	assert.ErrorIs(t, res.Err, llm.ErrInvalidOutput)
}

func TestGenerate_NonArrayIsFormatError(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `{"time":"09:00"}`})

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.False(t, res.OK())
	assert.Equal(t, ErrKindFormat, res.Err.Kind)
	assert.ErrorIs(t, res.Err, llm.ErrNotArray)
	assert.Empty(t, res.Schedule)
}

func TestGenerate_ServiceFailureSkipsParsing(t *testing.T) {
	client := &mockLLMClient{err: errors.Join(llm.ErrServiceFailure, errors.New("quota exhausted"))}
	svc := NewService(client)

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.False(t, res.OK())
	assert.Equal(t, ErrKindService, res.Err.Kind)
	assert.Equal(t, StageAwaitingResponse, res.Stage, "parser never reached")
	assert.Contains(t, res.Err.Message, "quota exhausted")
	assert.ErrorIs(t, res.Err, llm.ErrServiceFailure)
	assert.Empty(t, res.Schedule)
	assert.Equal(t, 1, client.calls)
}

func TestGenerate_PanicContained(t *testing.T) {
	svc := NewService(&mockLLMClient{panicMsg: "sdk exploded"})

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.False(t, res.OK())
	assert.Equal(t, ErrKindService, res.Err.Kind)
	assert.Contains(t, res.Err.Message, "sdk exploded")
	assert.Empty(t, res.Schedule)
}

func TestGenerate_EndToEndScenario(t *testing.T) {
	client := &mockLLMClient{response: dayJSON}
	svc := NewService(client)

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.True(t, res.OK())
	require.Len(t, res.Schedule, 3)

	var meeting *domain.ScheduleEntry
	for i := range res.Schedule {
		if res.Schedule[i].StartTime() == "14:00" {
			meeting = &res.Schedule[i]
		}
	}
	require.NotNil(t, meeting)
	assert.Equal(t, "Team Meeting", meeting.Activity)

	assert.Equal(t, llm.TaskGenerate, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, freshDirective)
	assert.Empty(t, client.last.SystemPrompt)
}

func TestGenerate_RecalculationScenario(t *testing.T) {
	const recalcJSON = `[
  {"time":"11:00 - 13:00","activity":"Capstone Coding","reason":"Still the top priority","type":"Work"},
  {"time":"13:00 - 13:30","activity":"Lunch Break","reason":"Recharge before the meeting","type":"Break"},
  {"time":"14:00 - 15:00","activity":"Team Meeting","reason":"Fixed at 14:00","type":"Work"}
]`
	client := &mockLLMClient{response: recalcJSON}
	svc := NewService(client)

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "I overslept until 11am")

	require.True(t, res.OK())
	assert.Equal(t, ModeRecalculate, res.Mode)
	assert.Equal(t, llm.TaskRecalculate, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, "I overslept until 11am")
	assert.Contains(t, client.last.UserPrompt, "RECALCULATE")

	require.Len(t, res.Schedule, 3)
	assert.Equal(t, "11:00", res.Schedule[0].StartTime())
	assert.Equal(t, "11:00 - 13:00", res.Schedule[0].Time)
	assert.Equal(t, domain.EntryBreak, res.Schedule[1].Type)
}

func TestGenerate_MissingKeysPermissiveByDefault(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `[{"time":"10:00 - 10:15","activity":"Break"}]`})

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.True(t, res.OK())
	require.Len(t, res.Schedule, 1)
	assert.Equal(t, []string{"reason", "type"}, res.Schedule[0].MissingFields())
}

func TestGenerate_StrictEntriesRejectsMissingKeys(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `[
  {"time":"09:00 - 10:00","activity":"Coding","reason":"Peak","type":"Work"},
  {"time":"10:00 - 10:15","activity":"Break"}
]`}, WithStrictEntries())

	res := svc.Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.False(t, res.OK())
	assert.Equal(t, ErrKindSchema, res.Err.Kind)
	assert.ErrorIs(t, res.Err, ErrIncompleteEntry)
	assert.Contains(t, res.Err.Message, "entry 2 missing reason, type")
	assert.Empty(t, res.Schedule)
}

func TestGenerate_LenientRules(t *testing.T) {
	raw := "[{\"time\":\"09:00 - 10:00\",\"activity\":\"Coding\",\"reason\":\"Peak\",\"type\":\"Work\",},]"

	strictRes := NewService(&mockLLMClient{response: raw}).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")
	assert.False(t, strictRes.OK())

	lenient := NewService(&mockLLMClient{response: raw}, Config{LenientJSON: true}.Options()...).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")
	require.True(t, lenient.OK())
	assert.Len(t, lenient.Schedule, 1)
}

func TestGenerate_CallIDForwarded(t *testing.T) {
	client := &mockLLMClient{response: "[]"}
	res := NewService(client, fixedIDs()).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "")

	require.True(t, res.OK())
	assert.Equal(t, "call-1", client.last.CallID)
	assert.Empty(t, res.Schedule)
}

func TestGenerate_DefaultCallIDsUnique(t *testing.T) {
	svc := NewService(&mockLLMClient{response: "[]"})
	a := svc.Generate(context.Background(), domain.DefaultProfile(), nil, "")
	b := svc.Generate(context.Background(), domain.DefaultProfile(), nil, "")
	assert.NotEmpty(t, a.CallID)
	assert.NotEqual(t, a.CallID, b.CallID)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("TEMPO_STRICT_ENTRIES", "1")
	t.Setenv("TEMPO_LENIENT_JSON", "false")

	cfg := LoadConfig()

	assert.True(t, cfg.StrictEntries)
	assert.False(t, cfg.LenientJSON)
	assert.Len(t, cfg.Options(), 1)
}

func TestUnavailable(t *testing.T) {
	res := Unavailable(llm.ErrMissingAPIKey).
		Generate(context.Background(), domain.DefaultProfile(), domain.DefaultTasks(), "flat tire")

	require.False(t, res.OK())
	assert.Equal(t, ErrKindService, res.Err.Kind)
	assert.Equal(t, ModeRecalculate, res.Mode)
	assert.ErrorIs(t, res.Err, llm.ErrMissingAPIKey)
	assert.NotNil(t, res.Schedule)
	assert.Empty(t, res.Schedule)
}
