package cli

import (
	"context"
	"fmt"

	"github.com/averyhall/tempo/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var week string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active schedule for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}

			status, err := app.Schedules.GetStatus(context.Background(), app.UserID, weekStart)
			if err != nil {
				return err
			}

			fmt.Println(formatter.Header("Schedule Status"))
			if !status.HasSchedule {
				fmt.Println(formatter.Dim("  No schedule yet. Run `tempo generate` first."))
				return nil
			}

			fmt.Printf("  Status:     %s\n", formatter.StatusIndicator(status.Status))
			fmt.Printf("  Algorithm:  %s\n", status.Algorithm)
			fmt.Printf("  Placed:     %d\n", status.Placements)
			fmt.Printf("  Unplaced:   %d\n", status.Unplaced)
			fmt.Printf("  Completed:  %.0f%% of tracked tasks\n", status.CompletionRate*100)
			fmt.Printf("  Generated:  %s\n", formatter.Dim(status.GeneratedAt.Local().Format("Mon Jan 2 15:04")))

			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week to inspect, any date in it (YYYY-MM-DD, default: current week)")

	return cmd
}
