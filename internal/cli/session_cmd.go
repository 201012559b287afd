package cli

import (
	"context"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// sessionInputs seed the session state.
type sessionInputs struct {
	tasksPath string
	profile   profileFlags
}

func newSessionCmd(app *App) *cobra.Command {
	var in sessionInputs

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Plan and replan your day interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return errNotInteractive
			}
			return runSession(cmd.Context(), app, in)
		},
	}

	cmd.Flags().StringVar(&in.tasksPath, "tasks", "", "YAML or JSON file with the task list (default: sample tasks)")
	addProfileFlags(cmd, &in.profile)

	return cmd
}

func runSession(ctx context.Context, app *App, in sessionInputs) error {
	tasks, err := loadTasks(in.tasksPath)
	if err != nil {
		return err
	}
	profile, err := in.profile.apply(domain.DefaultProfile())
	if err != nil {
		return err
	}

	m := newSessionModel(ctx, app.Planner, session.New(profile, tasks))
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
