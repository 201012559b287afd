package cli

import (
	"github.com/alexanderramin/tempo/internal/keyring"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/spf13/cobra"
)

// App holds the dependencies shared by CLI commands.
type App struct {
	Planner planner.Service
	Keys    keyring.Store
	// Provider is the configured LLM provider, used as the default keyring
	// entry for the key commands.
	Provider string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tempo",
		Short:         "AI day planner that schedules and reschedules your tasks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runSession(cmd.Context(), app, sessionInputs{})
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newPlanCmd(app),
		newPromptCmd(),
		newTasksCmd(),
		newKeyCmd(app),
	)

	return root
}
