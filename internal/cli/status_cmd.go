package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's task progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := beginTracker(ctx, app)
			if err != nil {
				return err
			}
			defer app.Tracker.End()

			out := formatter.FormatStatus(formatter.StatusData{
				User:            user,
				Tasks:           app.Tracker.Tasks(),
				DerivedProgress: app.Tracker.DerivedProgress(),
				CompletedCount:  app.Tracker.CompletedCount(),
				TotalCount:      app.Tracker.TotalCount(),
			})
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show past study days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := beginTracker(ctx, app); err != nil {
				return err
			}
			defer app.Tracker.End()

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatHistory(app.Tracker.History()))
			return nil
		},
	}
}
