package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// SnapshotRecord is one durable key/value snapshot: an opaque text payload
// plus the time it was last written.
type SnapshotRecord struct {
	Key      string
	Payload  string
	LastSync time.Time
}

// SnapshotRepo stores opaque per-user snapshots, keyed by storage key.
type SnapshotRepo interface {
	Put(ctx context.Context, rec *SnapshotRecord) error
	Get(ctx context.Context, key string) (*SnapshotRecord, error)
	Delete(ctx context.Context, key string) error
}

// SessionRepo stores the single durable session payload.
type SessionRepo interface {
	Put(ctx context.Context, payload string) error
	Get(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}

// ReminderRepo stores per-user study reminders.
type ReminderRepo interface {
	Create(ctx context.Context, r *domain.Reminder) error
	GetByID(ctx context.Context, id string) (*domain.Reminder, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error)
	CountByUser(ctx context.Context, userID string) (int, error)
	Update(ctx context.Context, r *domain.Reminder) error
	Delete(ctx context.Context, id string) error
}
