package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/tempo/internal/cli/formatter"
	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/alexanderramin/tempo/internal/planner"
	"github.com/spf13/cobra"
)

// planOutput is the --json shape of a generation call.
type planOutput struct {
	CallID   string          `json:"call_id"`
	Mode     planner.Mode    `json:"mode"`
	Schedule domain.Schedule `json:"schedule"`
	Error    *planError      `json:"error,omitempty"`
}

type planError struct {
	Kind    planner.ErrorKind `json:"kind"`
	Message string            `json:"message"`
}

func newPlanCmd(app *App) *cobra.Command {
	var (
		tasksPath   string
		profile     profileFlags
		disruption  string
		editProfile bool
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a schedule for today",
		Long: `Generate a schedule for today from your profile and tasks.

With --disruption the schedule is recalculated around what changed,
for example --disruption "I overslept until 11am".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := loadTasks(tasksPath)
			if err != nil {
				return err
			}

			p := domain.DefaultProfile()
			if editProfile {
				if !app.interactive() {
					return errNotInteractive
				}
				if err := profileForm(&p).Run(); err != nil {
					return err
				}
			}
			p, err = profile.apply(p)
			if err != nil {
				return err
			}

			message := "Generating schedule..."
			if planner.ModeFor(disruption) == planner.ModeRecalculate {
				message = "Recalculating schedule..."
			}
			stop := func() {}
			if app.interactive() && !asJSON {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), message)
			}
			res := app.Planner.Generate(cmd.Context(), p, tasks, disruption)
			stop()

			out := cmd.OutOrStdout()
			if asJSON {
				if err := writePlanJSON(out, res); err != nil {
					return err
				}
			} else if res.OK() {
				fmt.Fprintln(out, formatter.FormatResult(res))
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.FormatGenerationError(res.Err))
			}

			if !res.OK() {
				return reportedError{res.Err}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tasksPath, "tasks", "", "YAML or JSON file with the task list (default: sample tasks)")
	addProfileFlags(cmd, &profile)
	cmd.Flags().StringVar(&disruption, "disruption", "", "What changed; recalculates the schedule around it")
	cmd.Flags().BoolVar(&editProfile, "edit-profile", false, "Edit the profile in a form before planning")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")

	return cmd
}

func addProfileFlags(cmd *cobra.Command, f *profileFlags) {
	cmd.Flags().StringVar(&f.energyPeak, "energy-peak", "", "Energy peak: Morning, Afternoon, Evening or Night")
	cmd.Flags().StringVar(&f.start, "start", "", "Day start time as HH:MM")
}

func writePlanJSON(w io.Writer, res planner.Result) error {
	out := planOutput{CallID: res.CallID, Mode: res.Mode, Schedule: res.Schedule}
	if out.Schedule == nil {
		out.Schedule = domain.EmptySchedule()
	}
	if res.Err != nil {
		out.Error = &planError{Kind: res.Err.Kind, Message: res.Err.Message}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
