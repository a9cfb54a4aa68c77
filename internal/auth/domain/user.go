package domain

import "time"

// User is an account identity record. Email uniqueness is enforced at the
// store level. Users are never hard-deleted by the auth flows.
type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string  // bcrypt encoded, never serialized out
	AvatarURL    *string // nullable
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time // nullable, bumped on login
}
