package cli

import (
	"github.com/alexanderramin/ptemaster/internal/advice"
	"github.com/alexanderramin/ptemaster/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions  service.SessionService
	Tracker   service.TrackerService
	Reminders service.ReminderService
	Coach     advice.Coach

	// IsInteractive reports whether stdin is a terminal. Interactive-only
	// surfaces (the login form, the dashboard) refuse to run without it.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ptemaster" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "ptemaster",
		Short:         "PTE exam study tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare "ptemaster" on a terminal drops straight into the dashboard.
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newStatusCmd(app),
		newLogCmd(app),
		newHistoryCmd(app),
		newAdviceCmd(app),
		newReminderCmd(app),
		newSyncCmd(app),
		newDashboardCmd(app),
	)

	return root
}
