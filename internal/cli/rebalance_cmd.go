package cli

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/cli/formatter"
	"github.com/averyhall/tempo/internal/domain"
	"github.com/spf13/cobra"
)

func newRebalanceCmd(app *App) *cobra.Command {
	var (
		task      string
		estimated int
		actual    int
		completed bool
		event     string
		change    string
	)

	cmd := &cobra.Command{
		Use:   "rebalance",
		Short: "Regenerate the current week after feedback or calendar changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			var feedback []domain.TaskFeedback
			if task != "" {
				feedback = append(feedback, domain.TaskFeedback{
					TaskID:           task,
					EstimatedMinutes: estimated,
					ActualMinutes:    actual,
					Completed:        completed,
				})
			}

			var changes []domain.CalendarChange
			if event != "" {
				kind := change
				if kind == "" {
					kind = "added"
				}
				changes = append(changes, domain.CalendarChange{EventID: event, Kind: kind})
			}

			suggestion, err := app.Rebalance.Rebalance(context.Background(), app.UserID, feedback, changes)
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSchedule(suggestion))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task ID the feedback refers to")
	cmd.Flags().IntVar(&estimated, "estimated", 0, "Estimated minutes for the task")
	cmd.Flags().IntVar(&actual, "actual", 0, "Actual minutes spent on the task")
	cmd.Flags().BoolVar(&completed, "completed", false, "Whether the task was finished")
	cmd.Flags().StringVar(&event, "event", "", "Calendar event ID that changed")
	cmd.Flags().StringVar(&change, "change", "", "Kind of calendar change (added|removed|moved)")

	return cmd
}
