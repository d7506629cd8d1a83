package domain

import "time"

// Reminder is a per-user study alert.
type Reminder struct {
	ID        string
	UserID    string
	TimeOfDay string // HH:MM, 24-hour
	Label     string
	Active    bool
	CreatedAt time.Time
}
