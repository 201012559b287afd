package cli

import (
	"fmt"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var (
		tasksPath  string
		profile    profileFlags
		disruption string
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt that would be sent to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks(tasksPath)
			if err != nil {
				return err
			}
			p, err := profile.apply(domain.DefaultProfile())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), planner.BuildPrompt(p, tasks, disruption))
			return nil
		},
	}

	cmd.Flags().StringVar(&tasksPath, "tasks", "", "YAML or JSON file with the task list (default: sample tasks)")
	addProfileFlags(cmd, &profile)
	cmd.Flags().StringVar(&disruption, "disruption", "", "What changed; renders the recalculation prompt")

	return cmd
}
