package cloud

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ptemaster/internal/catalog"
	"github.com/alexanderramin/ptemaster/internal/domain"
	"github.com/alexanderramin/ptemaster/internal/repository"
	"github.com/alexanderramin/ptemaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, latency time.Duration) Gateway {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewLocalGateway(repository.NewSQLiteSnapshotRepo(db), latency)
}

func TestGateway_SaveLoad_RoundTrip(t *testing.T) {
	g := newTestGateway(t, 0)
	ctx := context.Background()

	tasks := catalog.Tasks()
	tasks[0].CurrentCount = 3
	history := catalog.SampleHistory()
	payload := domain.SyncPayload{Tasks: tasks, History: history}

	require.NoError(t, g.Save(ctx, "user_ab12cd34", payload))

	got, err := g.Load(ctx, "user_ab12cd34")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, tasks, got.Tasks)
	assert.Equal(t, history, got.History)
}

func TestGateway_Load_AbsentReturnsNil(t *testing.T) {
	g := newTestGateway(t, 0)

	got, err := g.Load(context.Background(), "user_never_synced")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGateway_UsersArePartitioned(t *testing.T) {
	g := newTestGateway(t, 0)
	ctx := context.Background()

	a := domain.SyncPayload{Tasks: []domain.Task{{ID: "s1", TargetCount: 5, CurrentCount: 5}}}
	b := domain.SyncPayload{Tasks: []domain.Task{{ID: "s1", TargetCount: 5, CurrentCount: 1}}}
	require.NoError(t, g.Save(ctx, "user_a", a))
	require.NoError(t, g.Save(ctx, "user_b", b))

	gotA, err := g.Load(ctx, "user_a")
	require.NoError(t, err)
	gotB, err := g.Load(ctx, "user_b")
	require.NoError(t, err)
	assert.Equal(t, 5, gotA.Tasks[0].CurrentCount)
	assert.Equal(t, 1, gotB.Tasks[0].CurrentCount)
}

func TestGateway_Save_OverwritesWholeSnapshot(t *testing.T) {
	g := newTestGateway(t, 0)
	ctx := context.Background()

	first := domain.SyncPayload{
		Tasks:   []domain.Task{{ID: "s1", TargetCount: 5, CurrentCount: 2}},
		History: []domain.DayProgress{{Date: "2024-01-01", TotalTasks: 1}},
	}
	second := domain.SyncPayload{
		Tasks: []domain.Task{{ID: "s1", TargetCount: 5, CurrentCount: 4}},
	}
	require.NoError(t, g.Save(ctx, "user_a", first))
	require.NoError(t, g.Save(ctx, "user_a", second))

	got, err := g.Load(ctx, "user_a")
	require.NoError(t, err)
	assert.Equal(t, 4, got.Tasks[0].CurrentCount)
	assert.Empty(t, got.History)
}

func TestGateway_SimulatedLatency_HonorsContext(t *testing.T) {
	g := newTestGateway(t, 500*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.Load(ctx, "user_a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 400*time.Millisecond)
}

func TestStorageKey_Prefix(t *testing.T) {
	assert.Equal(t, "pte_cloud_user_x", StorageKey("user_x"))
}
