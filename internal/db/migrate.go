package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER
// TABLE duplicates from re-runs are tolerated.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Durable copy of each user's task counters and history. The payload is
	// opaque JSON; the key carries the pte_cloud_ prefix plus the user id.
	`CREATE TABLE IF NOT EXISTS cloud_snapshots (
		storage_key TEXT PRIMARY KEY,
		payload     TEXT NOT NULL,
		last_sync   TEXT NOT NULL
	)`,

	// Single-row durable session, restored on startup.
	`CREATE TABLE IF NOT EXISTS session_state (
		id       TEXT PRIMARY KEY CHECK(id = 'current'),
		payload  TEXT NOT NULL,
		saved_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS reminders (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL,
		time_of_day TEXT NOT NULL,
		label       TEXT NOT NULL,
		active      INTEGER NOT NULL DEFAULT 1,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reminders_user ON reminders(user_id)`,
}
