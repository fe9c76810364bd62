package models

import "time"

// User represents an account entity used for authentication and authorization.
// Every sale, note and expense row is owned by exactly one user.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier used during authentication.
	Username string `json:"username"`

	// Password carries the plain-text password on inbound register/login
	// requests only. It is hashed with bcrypt before it ever reaches the
	// persistence layer and is never serialized back to clients.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the database.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Summary returns the public representation of the user embedded in
// login responses.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.UserID, Username: u.Username}
}

// UserSummary is the non-sensitive user projection returned to clients.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
