package cli

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/cli/formatter"
	"github.com/averyhall/tempo/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *App) *cobra.Command {
	var (
		task       string
		estimated  int
		actual     int
		completed  bool
		difficulty int
		notes      string
	)

	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Record how a scheduled task actually went",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := &domain.TaskFeedback{
				TaskID:           task,
				EstimatedMinutes: estimated,
				ActualMinutes:    actual,
				Completed:        completed,
				DifficultyRating: difficulty,
				Notes:            notes,
			}

			if err := app.Feedback.Submit(context.Background(), app.UserID, f); err != nil {
				return err
			}

			fmt.Println(formatter.Dim(fmt.Sprintf("Recorded feedback for %s.", task)))
			fmt.Println(formatter.Dim("Run `tempo rebalance` to fold it into this week's schedule."))
			return nil
		},
	}

	cmd.Flags().StringVar(&task, "task", "", "Task ID the feedback refers to (required)")
	cmd.Flags().IntVar(&estimated, "estimated", 0, "Estimated minutes")
	cmd.Flags().IntVar(&actual, "actual", 0, "Actual minutes spent")
	cmd.Flags().BoolVar(&completed, "completed", false, "Whether the task was finished")
	cmd.Flags().IntVar(&difficulty, "difficulty", 0, "Difficulty rating 1-5")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	_ = cmd.MarkFlagRequired("task")

	return cmd
}
