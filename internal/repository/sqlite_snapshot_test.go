package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/ptemaster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_PutGet_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	syncedAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	rec := &SnapshotRecord{
		Key:      "pte_cloud_user_ab12cd34",
		Payload:  `{"tasks":[],"history":[]}`,
		LastSync: syncedAt,
	}
	require.NoError(t, repo.Put(ctx, rec))

	got, err := repo.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.Equal(t, rec.Key, got.Key)
	assert.Equal(t, rec.Payload, got.Payload)
	assert.True(t, got.LastSync.Equal(syncedAt))
}

func TestSnapshotRepo_Put_OverwritesExisting(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	key := "pte_cloud_user_1"
	require.NoError(t, repo.Put(ctx, &SnapshotRecord{Key: key, Payload: "old", LastSync: time.Now()}))
	require.NoError(t, repo.Put(ctx, &SnapshotRecord{Key: key, Payload: "new", LastSync: time.Now()}))

	got, err := repo.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Payload)
}

func TestSnapshotRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)

	_, err := repo.Get(context.Background(), "pte_cloud_missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSnapshotRepo_KeysAreIsolated(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &SnapshotRecord{Key: "pte_cloud_a", Payload: "A", LastSync: time.Now()}))
	require.NoError(t, repo.Put(ctx, &SnapshotRecord{Key: "pte_cloud_b", Payload: "B", LastSync: time.Now()}))

	a, err := repo.Get(ctx, "pte_cloud_a")
	require.NoError(t, err)
	b, err := repo.Get(ctx, "pte_cloud_b")
	require.NoError(t, err)
	assert.Equal(t, "A", a.Payload)
	assert.Equal(t, "B", b.Payload)
}

func TestSnapshotRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteSnapshotRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, &SnapshotRecord{Key: "pte_cloud_x", Payload: "X", LastSync: time.Now()}))
	require.NoError(t, repo.Delete(ctx, "pte_cloud_x"))

	_, err := repo.Get(ctx, "pte_cloud_x")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, repo.Delete(ctx, "pte_cloud_x"))
}
