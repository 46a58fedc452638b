package models

import "time"

// User represents an account entity used for authentication.
// The email is the unique external identifier; UserID exists only at the
// persistence layer.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the display name chosen at registration.
	Username string `json:"username"`

	// Email uniquely identifies the user and is the subject of every
	// issued session token.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The plaintext password is never persisted.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
