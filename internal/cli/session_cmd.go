package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/ptemaster/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with an email address",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if email == "" {
				if !app.interactive() {
					return fmt.Errorf("no terminal attached; use --email")
				}
				if err := loginForm(&email).Run(); err != nil {
					return err
				}
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner("Signing in...")
			}
			user, err := app.Sessions.Login(ctx, email)
			stop()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address to log in with")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard unsynced changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Sessions.Logout(context.Background()); err != nil {
				return err
			}
			app.Tracker.End()
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := currentUser(context.Background(), app)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", formatter.Bold(user.Email), formatter.Dim("("+user.ID+")"))
			return nil
		},
	}
}

// trimInput strips whitespace so form validation matches what the service
// will see.
func trimInput(s string) string {
	return strings.TrimSpace(s)
}
