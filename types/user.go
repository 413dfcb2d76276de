package types

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the system.
// It contains identity and audit metadata.
type User struct {
	// ID is the internal unique identifier of the user. It is opaque,
	// stable, and generated by the server at registration.
	ID uuid.UUID `json:"id" db:"id"`

	// UserID is the unique login handle chosen by the user.
	// It is distinct from the internal ID.
	UserID string `json:"userId" db:"user_id"`

	// PasswordHash stores the salted bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
