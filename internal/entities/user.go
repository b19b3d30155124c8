package entities

import "time"

// User represents a user account in the database
type User struct {
	ID           int64     `json:"id"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
	Username     *string   `json:"username,omitempty"` // Pointer allows nil (username is optional)
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	CreatedAt    time.Time `json:"created_at"`
}
