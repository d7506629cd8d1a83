package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/ptemaster/internal/db"
	"github.com/alexanderramin/ptemaster/internal/domain"
)

// SQLiteReminderRepo implements ReminderRepo using a SQLite database.
type SQLiteReminderRepo struct {
	db db.DBTX
}

// NewSQLiteReminderRepo creates a new SQLiteReminderRepo.
func NewSQLiteReminderRepo(conn db.DBTX) *SQLiteReminderRepo {
	return &SQLiteReminderRepo{db: conn}
}

func (r *SQLiteReminderRepo) Create(ctx context.Context, rem *domain.Reminder) error {
	query := `INSERT INTO reminders (id, user_id, time_of_day, label, active, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rem.ID,
		rem.UserID,
		rem.TimeOfDay,
		rem.Label,
		boolToInt(rem.Active),
		rem.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	query := `SELECT id, user_id, time_of_day, label, active, created_at
		FROM reminders WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanReminder(row)
}

func (r *SQLiteReminderRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Reminder, error) {
	query := `SELECT id, user_id, time_of_day, label, active, created_at
		FROM reminders WHERE user_id = ? ORDER BY time_of_day, created_at`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*domain.Reminder
	for rows.Next() {
		var rem domain.Reminder
		var active int
		var createdAtStr string
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.TimeOfDay, &rem.Label, &active, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		rem.Active = intToBool(active)
		rem.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		reminders = append(reminders, &rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reminders: %w", err)
	}
	return reminders, nil
}

func (r *SQLiteReminderRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM reminders WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting reminders: %w", err)
	}
	return n, nil
}

func (r *SQLiteReminderRepo) Update(ctx context.Context, rem *domain.Reminder) error {
	query := `UPDATE reminders SET time_of_day = ?, label = ?, active = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		rem.TimeOfDay, rem.Label, boolToInt(rem.Active), rem.ID)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("reminder %s: %w", rem.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteReminderRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

func (r *SQLiteReminderRepo) scanReminder(row *sql.Row) (*domain.Reminder, error) {
	var rem domain.Reminder
	var active int
	var createdAtStr string
	err := row.Scan(&rem.ID, &rem.UserID, &rem.TimeOfDay, &rem.Label, &active, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("reminder: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reminder: %w", err)
	}
	rem.Active = intToBool(active)
	rem.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &rem, nil
}
