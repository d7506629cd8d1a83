// Package syncer debounces progress-store mutations into batched writes to
// the persistence gateway, so a burst of taps produces a single save.
package syncer

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// DefaultDebounce is the quiet period that must elapse after the last
// mutation before a save fires.
const DefaultDebounce = 2 * time.Second

// State is the scheduler's position in its Idle -> Pending -> Writing cycle.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateWriting State = "writing"
)

// SnapshotFunc captures the full store state at save time.
type SnapshotFunc func() domain.SyncPayload

// SaveFunc persists one snapshot. Errors are observed but never retried.
type SaveFunc func(ctx context.Context, payload domain.SyncPayload) error

// Scheduler coalesces mutations into debounced saves. Each Notify while
// Pending restarts the timer, so the window slides until the user pauses.
// At most one save is in flight at a time; a mutation observed during a
// write re-arms a fresh window once the write settles.
type Scheduler struct {
	delay    time.Duration
	snapshot SnapshotFunc
	save     SaveFunc
	observer Observer

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	dirty  bool // mutation arrived while writing
	closed bool
}

// New creates a scheduler. A non-positive delay falls back to
// DefaultDebounce. The observer may be nil.
func New(delay time.Duration, snapshot SnapshotFunc, save SaveFunc, observer Observer) *Scheduler {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Scheduler{
		delay:    delay,
		snapshot: snapshot,
		save:     save,
		observer: observer,
		state:    StateIdle,
	}
}

// Notify records that a mutation happened. Cancel-then-reschedule happens
// under one lock acquisition so the timer can never double-fire.
func (s *Scheduler) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	switch s.state {
	case StateIdle:
		s.state = StatePending
		s.timer = time.AfterFunc(s.delay, s.fire)
	case StatePending:
		s.timer.Stop()
		s.timer = time.AfterFunc(s.delay, s.fire)
	case StateWriting:
		s.dirty = true
	}
}

// fire runs on the timer goroutine when the quiet period elapses.
func (s *Scheduler) fire() {
	s.mu.Lock()
	if s.closed || s.state != StatePending {
		s.mu.Unlock()
		return
	}
	s.state = StateWriting
	s.timer = nil
	s.mu.Unlock()

	s.write(context.Background())
}

// write performs one save and settles back to Idle, re-arming the window
// if a mutation arrived mid-write. The caller must hold the state as
// Writing and must not hold the lock.
func (s *Scheduler) write(ctx context.Context) error {
	start := time.Now()
	payload := s.snapshot()
	err := s.save(ctx, payload)
	s.observer.OnSyncComplete(SyncEvent{
		Tasks:    len(payload.Tasks),
		Duration: time.Since(start),
		Err:      err,
	})

	s.mu.Lock()
	s.state = StateIdle
	if s.dirty && !s.closed {
		s.dirty = false
		s.state = StatePending
		s.timer = time.AfterFunc(s.delay, s.fire)
	}
	s.mu.Unlock()
	return err
}

// Flush cancels any pending window and saves synchronously. One-shot
// commands use it so their single mutation is durable before exit. If a
// save is already in flight, Flush only marks the state dirty and returns;
// the in-flight write's settle logic picks it up.
func (s *Scheduler) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	if s.state == StateWriting {
		s.dirty = true
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = StateWriting
	s.mu.Unlock()

	return s.write(ctx)
}

// Close cancels any pending timer. No final flush happens: sync is best
// effort and up to one debounce window of changes may be lost on teardown.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.dirty = false
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.state == StatePending {
		s.state = StateIdle
	}
}

// CurrentState reports where the scheduler is in its cycle.
func (s *Scheduler) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Busy reports whether a save is pending or in flight, for the dashboard's
// "syncing" indicator.
func (s *Scheduler) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != StateIdle
}
