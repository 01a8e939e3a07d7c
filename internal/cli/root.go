package cli

import (
	"github.com/averyhall/tempo/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Rebalance service.RebalanceService
	Feedback  service.FeedbackService

	// UserID identifies the local user for all commands.
	UserID string

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "tempo",
		Short: "Weekly schedule synthesis around your calendar",
	}

	root.AddCommand(
		newGenerateCmd(app),
		newStatusCmd(app),
		newRebalanceCmd(app),
		newFeedbackCmd(app),
	)

	return root
}
