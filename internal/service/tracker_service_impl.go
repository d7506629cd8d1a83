package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/ptemaster/internal/cloud"
	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/alexanderramin/ptemaster/internal/progress"
	"github.com/alexanderramin/ptemaster/internal/syncer"
)

// TrackerConfig tunes the tracker's defaults.
type TrackerConfig struct {
	// Catalog is the task set installed on reset and for first-time users.
	Catalog []domain.Task

	// SeedHistory installs the sample history for users with no cloud
	// data, mirroring the demo behavior of the original dashboard. When
	// false such users start with an empty history.
	SeedHistory []domain.DayProgress

	// Debounce is the sync quiet period. Zero means syncer.DefaultDebounce.
	Debounce time.Duration
}

type trackerService struct {
	cfg      TrackerConfig
	gateway  cloud.Gateway
	observer syncer.Observer
	store    *progress.Store

	mu    sync.Mutex
	sched *syncer.Scheduler
	user  *domain.UserIdentity
}

// NewTrackerService creates a TrackerService. The store starts with the
// default catalog so read operations are safe before Begin.
func NewTrackerService(cfg TrackerConfig, gateway cloud.Gateway, observer syncer.Observer) TrackerService {
	store := progress.NewStore()
	store.Initialize(cloneTasks(cfg.Catalog), nil)
	return &trackerService{
		cfg:     cfg,
		gateway: gateway,
		observer: func() syncer.Observer {
			if observer != nil {
				return observer
			}
			return syncer.NoopObserver{}
		}(),
		store: store,
	}
}

func (t *trackerService) Begin(ctx context.Context, user *domain.UserIdentity) error {
	if user == nil || user.ID == "" {
		return fmt.Errorf("begin tracker: missing user identity")
	}

	// Any load failure is treated the same as "never synced": the user
	// starts from the default catalog. Persistence problems must never
	// block the session.
	saved, err := t.gateway.Load(ctx, user.ID)
	if err != nil || saved == nil {
		t.store.Initialize(cloneTasks(t.cfg.Catalog), t.cfg.SeedHistory)
	} else {
		t.store.Initialize(saved.Tasks, saved.History)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sched != nil {
		t.sched.Close()
	}
	t.user = user

	userID := user.ID
	t.sched = syncer.New(
		t.cfg.Debounce,
		t.store.Snapshot,
		func(ctx context.Context, payload domain.SyncPayload) error {
			return t.gateway.Save(ctx, userID, payload)
		},
		t.observer,
	)
	t.store.SetMutationListener(t.sched.Notify)
	return nil
}

func (t *trackerService) Adjust(taskID string, delta int) bool {
	return t.store.Adjust(taskID, delta)
}

func (t *trackerService) Tasks() []domain.Task { return t.store.Tasks() }

func (t *trackerService) Task(taskID string) (domain.Task, bool) { return t.store.Get(taskID) }

func (t *trackerService) History() []domain.DayProgress { return t.store.History() }

func (t *trackerService) DerivedProgress() int { return t.store.DerivedProgress() }

func (t *trackerService) CompletedCount() int { return t.store.CompletedCount() }

func (t *trackerService) TotalCount() int { return t.store.TotalCount() }

func (t *trackerService) Syncing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sched != nil && t.sched.Busy()
}

func (t *trackerService) Flush(ctx context.Context) error {
	t.mu.Lock()
	sched := t.sched
	t.mu.Unlock()
	if sched == nil {
		return fmt.Errorf("flush: no active session")
	}
	return sched.Flush(ctx)
}

func (t *trackerService) End() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.sched != nil {
		t.sched.Close()
		t.sched = nil
	}
	t.user = nil
	t.store.SetMutationListener(nil)
	t.store.Initialize(cloneTasks(t.cfg.Catalog), nil)
}

func cloneTasks(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	return out
}
