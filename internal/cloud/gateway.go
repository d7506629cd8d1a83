// Package cloud is the persistence gateway for user snapshots. The current
// backend is the local SQLite database dressed up with an optional
// simulated round-trip latency; a real backend only needs to honor the
// same load/save contract.
package cloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/alexanderramin/ptemaster/internal/repository"
)

// KeyPrefix namespaces snapshot storage keys per user.
const KeyPrefix = "pte_cloud_"

// Gateway loads and saves per-user snapshots. Load returns (nil, nil) when
// the user has never synced.
type Gateway interface {
	Load(ctx context.Context, userID string) (*domain.SyncPayload, error)
	Save(ctx context.Context, userID string, payload domain.SyncPayload) error
}

// envelope is the stored value: the snapshot plus the sync timestamp.
type envelope struct {
	Tasks    []domain.Task        `json:"tasks"`
	History  []domain.DayProgress `json:"history"`
	LastSync string               `json:"lastSync"`
}

// StorageKey returns the namespaced key for a user's snapshot.
func StorageKey(userID string) string {
	return KeyPrefix + userID
}

type localGateway struct {
	snapshots repository.SnapshotRepo
	latency   time.Duration
	now       func() time.Time
}

// NewLocalGateway creates a Gateway over the local snapshot store. A
// positive latency is applied to every call to mimic a cloud round trip.
func NewLocalGateway(snapshots repository.SnapshotRepo, latency time.Duration) Gateway {
	return &localGateway{
		snapshots: snapshots,
		latency:   latency,
		now:       time.Now,
	}
}

func (g *localGateway) Load(ctx context.Context, userID string) (*domain.SyncPayload, error) {
	if err := g.simulateLatency(ctx); err != nil {
		return nil, err
	}

	rec, err := g.snapshots.Get(ctx, StorageKey(userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading user data: %w", err)
	}

	var env envelope
	if err := json.Unmarshal([]byte(rec.Payload), &env); err != nil {
		return nil, fmt.Errorf("decoding user data: %w", err)
	}
	return &domain.SyncPayload{Tasks: env.Tasks, History: env.History}, nil
}

func (g *localGateway) Save(ctx context.Context, userID string, payload domain.SyncPayload) error {
	if err := g.simulateLatency(ctx); err != nil {
		return err
	}

	now := g.now().UTC()
	data, err := json.Marshal(envelope{
		Tasks:    payload.Tasks,
		History:  payload.History,
		LastSync: now.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encoding user data: %w", err)
	}

	rec := &repository.SnapshotRecord{
		Key:      StorageKey(userID),
		Payload:  string(data),
		LastSync: now,
	}
	if err := g.snapshots.Put(ctx, rec); err != nil {
		return fmt.Errorf("saving user data: %w", err)
	}
	return nil
}

func (g *localGateway) simulateLatency(ctx context.Context) error {
	if g.latency <= 0 {
		return nil
	}
	select {
	case <-time.After(g.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
