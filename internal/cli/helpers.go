package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// currentUser restores the persisted session or fails with a login hint.
func currentUser(ctx context.Context, app *App) (*domain.UserIdentity, error) {
	user, err := app.Sessions.Restore(ctx)
	if err != nil {
		return nil, fmt.Errorf("restoring session: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in. Run 'ptemaster login' first")
	}
	return user, nil
}

// beginTracker restores the session and loads the user's progress into the
// tracker. One-shot commands call End (without a flush) when done; commands
// that mutate call Flush explicitly before that.
func beginTracker(ctx context.Context, app *App) (*domain.UserIdentity, error) {
	user, err := currentUser(ctx, app)
	if err != nil {
		return nil, err
	}
	if err := app.Tracker.Begin(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
