package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ptemaster/internal/db"
)

// SQLiteSnapshotRepo implements SnapshotRepo using a SQLite database.
type SQLiteSnapshotRepo struct {
	db db.DBTX
}

// NewSQLiteSnapshotRepo creates a new SQLiteSnapshotRepo.
func NewSQLiteSnapshotRepo(conn db.DBTX) *SQLiteSnapshotRepo {
	return &SQLiteSnapshotRepo{db: conn}
}

func (r *SQLiteSnapshotRepo) Put(ctx context.Context, rec *SnapshotRecord) error {
	query := `INSERT INTO cloud_snapshots (storage_key, payload, last_sync)
		VALUES (?, ?, ?)
		ON CONFLICT(storage_key) DO UPDATE
		SET payload = excluded.payload, last_sync = excluded.last_sync`
	_, err := r.db.ExecContext(ctx, query,
		rec.Key,
		rec.Payload,
		rec.LastSync.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting snapshot %s: %w", rec.Key, err)
	}
	return nil
}

func (r *SQLiteSnapshotRepo) Get(ctx context.Context, key string) (*SnapshotRecord, error) {
	query := `SELECT storage_key, payload, last_sync FROM cloud_snapshots WHERE storage_key = ?`
	row := r.db.QueryRowContext(ctx, query, key)

	var rec SnapshotRecord
	var lastSyncStr string
	err := row.Scan(&rec.Key, &rec.Payload, &lastSyncStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("snapshot %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	rec.LastSync, err = time.Parse(time.RFC3339, lastSyncStr)
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot last_sync: %w", err)
	}
	return &rec, nil
}

func (r *SQLiteSnapshotRepo) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM cloud_snapshots WHERE storage_key = ?`
	if _, err := r.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("deleting snapshot %s: %w", key, err)
	}
	return nil
}
