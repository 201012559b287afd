package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/logger"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/alexanderramin/tempo/internal/session"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// generatedMsg carries a finished generation call back to Update.
type generatedMsg struct {
	res planner.Result
}

// sessionModel is the bubbletea Model for the interactive planner. Only
// Update touches state; generation runs in a Cmd and reports back through
// generatedMsg.
type sessionModel struct {
	ctx     context.Context
	planner planner.Service
	state   *session.State

	input   textinput.Model
	spinner spinner.Model
	width   int

	busy     bool
	busyMode planner.Mode
	notice   string
	quitting bool
}

func newSessionModel(ctx context.Context, svc planner.Service, state *session.State) sessionModel {
	ti := textinput.New()
	ti.Placeholder = "e.g. I overslept until 11am"
	ti.Prompt = "What changed? "
	ti.CharLimit = 300

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	return sessionModel{
		ctx:     ctx,
		planner: svc,
		state:   state,
		input:   ti,
		spinner: sp,
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m sessionModel) Init() tea.Cmd {
	return nil
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case generatedMsg:
		m.busy = false
		m.state.Apply(msg.res)
		if msg.res.OK() && msg.res.Mode == planner.ModeRecalculate {
			m.input.Reset()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m sessionModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "g":
		return m.generate("")
	case "r":
		m.notice = ""
		return m, m.input.Focus()
	}
	return m, nil
}

func (m sessionModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		disruption := m.input.Value()
		if err := m.state.CanRecalculate(disruption); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.input.Blur()
		return m.generate(disruption)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// generate starts one generation call unless another is in flight.
func (m sessionModel) generate(disruption string) (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	m.busyMode = planner.ModeFor(disruption)
	m.notice = ""

	ctx, svc := m.ctx, m.planner
	profile, tasks := m.state.Profile, m.state.Tasks
	logger.Debug("session generation started", "mode", m.busyMode)

	run := func() tea.Msg {
		return generatedMsg{res: svc.Generate(ctx, profile, tasks, disruption)}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

func (m sessionModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(formatter.Header("Tempo"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatProfile(m.state.Profile))
	b.WriteString("\n\n")

	b.WriteString(formatter.Header("Tasks"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatTasks(m.state.Tasks))
	b.WriteString("\n")

	b.WriteString(formatter.Header("Schedule"))
	b.WriteString("\n")
	b.WriteString(formatter.FormatSchedule(m.state.Schedule))
	b.WriteString("\n")

	if last := m.state.Last; last != nil && !last.OK() {
		b.WriteString("\n")
		b.WriteString(formatter.FormatGenerationError(last.Err))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(formatter.StyleYellow.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.busy {
		label := "Generating schedule..."
		if m.busyMode == planner.ModeRecalculate {
			label = "Recalculating schedule..."
		}
		b.WriteString(m.spinner.View() + " " + formatter.Dim(label))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(formatter.Dim(m.helpLine()))

	return b.String()
}

func (m sessionModel) helpLine() string {
	if m.input.Focused() {
		return "enter recalculate · esc cancel · ctrl+c quit"
	}
	return "g generate · r report a change · q quit"
}
