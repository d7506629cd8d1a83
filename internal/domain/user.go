package domain

import "time"

// UserIdentity is the mock-authenticated user for the current session.
// The ID is the storage partition key; nothing depends on its internal
// structure beyond uniqueness.
type UserIdentity struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
