package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/ptemaster/internal/db"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database. Only
// one session exists at a time; the table is constrained to a single row.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Put(ctx context.Context, payload string) error {
	query := `INSERT INTO session_state (id, payload, saved_at)
		VALUES ('current', ?, ?)
		ON CONFLICT(id) DO UPDATE
		SET payload = excluded.payload, saved_at = excluded.saved_at`
	if _, err := r.db.ExecContext(ctx, query, payload, nowUTC()); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Get(ctx context.Context) (string, error) {
	query := `SELECT payload FROM session_state WHERE id = 'current'`
	var payload string
	err := r.db.QueryRowContext(ctx, query).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("session: %w", ErrNotFound)
		}
		return "", fmt.Errorf("scanning session: %w", err)
	}
	return payload, nil
}

func (r *SQLiteSessionRepo) Clear(ctx context.Context) error {
	query := `DELETE FROM session_state WHERE id = 'current'`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
