package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var delta int

	cmd := &cobra.Command{
		Use:   "log TASK_ID",
		Short: "Log completed repetitions of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			taskID := args[0]

			if _, err := beginTracker(ctx, app); err != nil {
				return err
			}
			defer app.Tracker.End()

			if !app.Tracker.Adjust(taskID, delta) {
				return fmt.Errorf("unknown task %q; run 'ptemaster status' to list tasks", taskID)
			}
			if err := app.Tracker.Flush(ctx); err != nil {
				return fmt.Errorf("saving progress: %w", err)
			}

			task, _ := app.Tracker.Task(taskID)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s %s\n",
				formatter.DoneMark(task.Done()),
				formatter.Bold(task.Name),
				formatter.RenderTaskBar(task.CurrentCount, task.TargetCount, 8),
				formatter.RenderCounter(task.CurrentCount, task.TargetCount),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&delta, "count", 1, "Repetitions to add (negative to undo)")

	return cmd
}

func newSyncCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Force an immediate save of current progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if _, err := beginTracker(ctx, app); err != nil {
				return err
			}
			defer app.Tracker.End()

			if err := app.Tracker.Flush(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Progress synced.")
			return nil
		},
	}
}
