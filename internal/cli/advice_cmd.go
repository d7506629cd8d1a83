package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAdviceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "advice",
		Short: "Get a study tip based on today's progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := beginTracker(ctx, app); err != nil {
				return err
			}
			defer app.Tracker.End()

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Thinking...")
			}
			tip := app.Coach.StudyAdvice(ctx, app.Tracker.CompletedCount(), app.Tracker.TotalCount())
			stop()

			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Coach", tip))
			return nil
		},
	}
}
