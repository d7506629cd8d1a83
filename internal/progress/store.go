// Package progress holds the authoritative in-memory task counters and
// history for the active session. The store performs no I/O; persistence
// is driven by a mutation listener (the sync scheduler).
package progress

import (
	"sync"

	"github.com/alexanderramin/ptemaster/internal/domain"
)

// Store is the single writer for task counters and history.
type Store struct {
	mu       sync.Mutex
	tasks    []domain.Task
	index    map[string]int // task ID -> position in tasks
	history  []domain.DayProgress
	onMutate func()
}

// NewStore creates an empty store. Call Initialize to install a catalog.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// SetMutationListener registers fn to be called after every applied
// mutation. Only one listener is supported; a nil fn detaches it.
func (s *Store) SetMutationListener(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onMutate = fn
}

// Initialize replaces the entire state. Incoming counters are clamped into
// [0, target] so a corrupt or hand-edited snapshot can never violate the
// counter invariant. Initialize does not fire the mutation listener: a
// freshly loaded state is by definition in sync.
func (s *Store) Initialize(tasks []domain.Task, history []domain.DayProgress) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = make([]domain.Task, len(tasks))
	s.index = make(map[string]int, len(tasks))
	for i, t := range tasks {
		t.CurrentCount = domain.ClampCount(t.CurrentCount, t.TargetCount)
		s.tasks[i] = t
		s.index[t.ID] = i
	}

	s.history = make([]domain.DayProgress, len(history))
	copy(s.history, history)
}

// Adjust applies a delta to one task's counter, clamped into [0, target].
// An unknown task ID is a silent no-op so a stale reference can never
// break the interaction loop. Returns true when the task exists.
func (s *Store) Adjust(taskID string, delta int) bool {
	s.mu.Lock()
	i, ok := s.index[taskID]
	if !ok {
		s.mu.Unlock()
		return false
	}
	t := &s.tasks[i]
	t.CurrentCount = domain.ClampCount(t.CurrentCount+delta, t.TargetCount)
	fn := s.onMutate
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
	return true
}

// Get returns a copy of the task with the given ID.
func (s *Store) Get(taskID string) (domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[taskID]
	if !ok {
		return domain.Task{}, false
	}
	return s.tasks[i], true
}

// Tasks returns a copy of all tasks in catalog order.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// History returns a copy of the historical records.
func (s *Store) History() []domain.DayProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.DayProgress, len(s.history))
	for i, d := range s.history {
		ids := make([]string, len(d.CompletedTasks))
		copy(ids, d.CompletedTasks)
		d.CompletedTasks = ids
		out[i] = d
	}
	return out
}

// Snapshot returns the full current state as one persistence unit.
func (s *Store) Snapshot() domain.SyncPayload {
	return domain.SyncPayload{Tasks: s.Tasks(), History: s.History()}
}

// DerivedProgress returns overall completion as a rounded integer
// percentage: sum(current) over sum(target). An empty catalog is 0%.
func (s *Store) DerivedProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var current, target int
	for _, t := range s.tasks {
		current += t.CurrentCount
		target += t.TargetCount
	}
	if target == 0 {
		return 0
	}
	return int(float64(current)/float64(target)*100 + 0.5)
}

// CompletedCount returns how many tasks have reached their target.
func (s *Store) CompletedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if t.Done() {
			n++
		}
	}
	return n
}

// TotalCount returns the number of tasks in the catalog.
func (s *Store) TotalCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
