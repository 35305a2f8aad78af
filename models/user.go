package models

import "time"

// User represents an account entity used for authentication and ownership
// of task records.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user. It becomes the
	// "sub" claim of every token issued for the user.
	UserID int64 `json:"-"`

	// Username is the unique, case-sensitive login name. It is immutable
	// once the account is created.
	Username string `json:"username"`

	// Email is an optional contact address.
	Email *string `json:"email,omitempty"`

	// PasswordHash stores the credential digest (salt and derived key).
	// This value MUST be produced by the password hasher, never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
