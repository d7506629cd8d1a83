package service

import (
	"context"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// SessionService establishes and tears down the mock-authenticated user
// that scopes all persisted data.
type SessionService interface {
	// Login accepts any email-shaped string and synthesizes a new identity.
	// It always succeeds after the configured simulated latency.
	Login(ctx context.Context, email string) (*domain.UserIdentity, error)

	// Restore recovers the durable session. Returns (nil, nil) when no
	// session is stored.
	Restore(ctx context.Context) (*domain.UserIdentity, error)

	// Logout clears the durable session. Idempotent.
	Logout(ctx context.Context) error
}

// TrackerService is the session-scoped composition of the progress store,
// the sync scheduler and the persistence gateway.
type TrackerService interface {
	// Begin loads the user's snapshot (or defaults) into the store and
	// starts observing mutations for debounced sync.
	Begin(ctx context.Context, user *domain.UserIdentity) error

	// Adjust applies a counter delta. Unknown task IDs are a no-op.
	Adjust(taskID string, delta int) bool

	Tasks() []domain.Task
	Task(taskID string) (domain.Task, bool)
	History() []domain.DayProgress
	DerivedProgress() int
	CompletedCount() int
	TotalCount() int

	// Syncing reports whether a save is pending or in flight.
	Syncing() bool

	// Flush persists the current snapshot immediately.
	Flush(ctx context.Context) error

	// End cancels pending sync without a final flush and resets the store
	// to the default catalog with zeroed counters.
	End()
}

// ReminderService manages the per-user study alerts.
type ReminderService interface {
	// List returns the user's reminders, seeding the default entry the
	// first time a user is seen.
	List(ctx context.Context, userID string) ([]*domain.Reminder, error)

	Add(ctx context.Context, userID, timeOfDay, label string) (*domain.Reminder, error)
	Toggle(ctx context.Context, id string) (*domain.Reminder, error)
	Remove(ctx context.Context, id string) error
}
