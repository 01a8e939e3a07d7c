package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/averyhall/tempo/internal/cli/formatter"
	"github.com/averyhall/tempo/internal/service"
	"github.com/spf13/cobra"
)

func newGenerateCmd(app *App) *cobra.Command {
	var (
		week   string
		force  bool
		modify string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a schedule for a week",
		RunE: func(cmd *cobra.Command, args []string) error {
			weekStart, err := parseWeek(week)
			if err != nil {
				return err
			}

			suggestion, err := app.Schedules.Generate(context.Background(), service.GenerateRequest{
				UserID:       app.UserID,
				WeekStart:    weekStart,
				Force:        force,
				Modification: modify,
			})
			if err != nil {
				return err
			}

			fmt.Print(formatter.RenderSchedule(suggestion))
			return nil
		},
	}

	cmd.Flags().StringVar(&week, "week", "", "Week to schedule, any date in it (YYYY-MM-DD, default: current week)")
	cmd.Flags().BoolVar(&force, "force", false, "Regenerate even if a schedule already exists")
	cmd.Flags().StringVar(&modify, "modify", "", "Free-text change request passed to the generator")

	return cmd
}

// parseWeek turns a --week flag value into a timestamp inside the target
// week. Empty means now; normalization to Monday happens in the service.
func parseWeek(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --week %q: want YYYY-MM-DD", s)
	}
	return t, nil
}
