package cli

import (
	"fmt"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTasksCmd() *cobra.Command {
	var tasksPath string

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Show the task list that would be planned",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks(tasksPath)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatter.Header("Tasks"))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTasks(tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&tasksPath, "tasks", "", "YAML or JSON file with the task list (default: sample tasks)")

	return cmd
}
