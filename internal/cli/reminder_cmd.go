package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/alexanderramin/ptemaster/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// timeOfDayValue is a pflag.Value that only accepts 24-hour HH:MM strings,
// so bad times fail at flag parse time instead of deep in the service.
type timeOfDayValue string

var _ pflag.Value = (*timeOfDayValue)(nil)

func (v *timeOfDayValue) String() string { return string(*v) }

func (v *timeOfDayValue) Set(s string) error {
	if !service.ValidTimeOfDay(s) {
		return fmt.Errorf("invalid time %q: want HH:MM (24-hour)", s)
	}
	*v = timeOfDayValue(s)
	return nil
}

func (v *timeOfDayValue) Type() string { return "HH:MM" }

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage daily study reminders",
	}

	cmd.AddCommand(
		newReminderListCmd(app),
		newReminderAddCmd(app),
		newReminderToggleCmd(app),
		newReminderRemoveCmd(app),
	)

	return cmd
}

func newReminderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			reminders, err := app.Reminders.List(ctx, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReminders(reminders))
			return nil
		},
	}
}

func newReminderAddCmd(app *App) *cobra.Command {
	var at timeOfDayValue
	var label string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a reminder",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			user, err := currentUser(ctx, app)
			if err != nil {
				return err
			}

			rem, err := app.Reminders.Add(ctx, user.ID, at.String(), label)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added reminder %s at %s\n", rem.Label, rem.TimeOfDay)
			return nil
		},
	}

	cmd.Flags().Var(&at, "at", "Time of day, e.g. 08:00")
	cmd.Flags().StringVar(&label, "label", "", "Reminder label")
	_ = cmd.MarkFlagRequired("at")
	_ = cmd.MarkFlagRequired("label")

	return cmd
}

func newReminderToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle ID",
		Short: "Enable or disable a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveReminderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			rem, err := app.Reminders.Toggle(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", rem.Label, formatter.ActivePill(rem.Active))
			return nil
		},
	}
}

func newReminderRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveReminderID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Reminders.Remove(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed reminder %s\n", id)
			return nil
		},
	}
}

// resolveReminderID expands a unique ID prefix (as shown by "reminder list")
// to the full reminder ID.
func resolveReminderID(ctx context.Context, app *App, prefix string) (string, error) {
	user, err := currentUser(ctx, app)
	if err != nil {
		return "", err
	}
	reminders, err := app.Reminders.List(ctx, user.ID)
	if err != nil {
		return "", err
	}

	var match string
	for _, rem := range reminders {
		if !strings.HasPrefix(rem.ID, prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("reminder ID %q is ambiguous", prefix)
		}
		match = rem.ID
	}
	if match == "" {
		return "", fmt.Errorf("no reminder matching %q", prefix)
	}
	return match, nil
}
