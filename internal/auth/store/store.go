package store

import (
	"context"
	"errors"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	ResetTokens() ResetTokens

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Rollback also
	// happens on panic, so no exit path leaves a transaction open.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetByEmail returns a user by email (case-sensitive, as stored).
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByID returns a user by its generated numeric id.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// Create inserts a new user and returns the generated id. A duplicate
	// email surfaces as ErrAlreadyExists, never as a raw driver error.
	Create(ctx context.Context, u domain.User) (int64, error)

	// UpdateLastLogin bumps the last_login timestamp.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error

	// UpdateProfile applies only the non-nil fields, leaving others untouched.
	UpdateProfile(ctx context.Context, userID int64, name, avatarURL *string) error

	// UpdatePasswordHash sets the password_hash.
	UpdatePasswordHash(ctx context.Context, userID int64, newHash string) error

	// SetActive flips the is_active flag. Deactivated accounts keep their
	// rows; nothing in the auth flows hard-deletes a user.
	SetActive(ctx context.Context, userID int64, active bool) error
}

type RefreshTokens interface {
	// Create stores a new refresh token record.
	Create(ctx context.Context, t domain.RefreshToken) error

	// GetActive returns the token by fingerprint only if it is unrevoked and
	// unexpired at the given instant.
	GetActive(ctx context.Context, tokenHash string, now time.Time) (domain.RefreshToken, error)

	// GetByHash returns the token by fingerprint regardless of state.
	GetByHash(ctx context.Context, tokenHash string) (domain.RefreshToken, error)

	// Revoke flips revoked=1 for the given fingerprint.
	Revoke(ctx context.Context, tokenHash string) error

	// DeleteExpired is optional housekeeping; nothing in the request flows
	// depends on it.
	DeleteExpired(ctx context.Context, now time.Time) error
}

type ResetTokens interface {
	// Create stores a new reset token record. A fingerprint collision
	// surfaces as ErrAlreadyExists; the caller swallows it to avoid leaking
	// whether a token already exists.
	Create(ctx context.Context, t domain.PasswordResetToken) error

	// GetActive returns the token by fingerprint only if it is unused and
	// unexpired at the given instant.
	GetActive(ctx context.Context, tokenHash string, now time.Time) (domain.PasswordResetToken, error)

	// MarkUsed sets used=1 so the token can never be redeemed again.
	MarkUsed(ctx context.Context, id string) error

	// DeleteExpired is optional housekeeping.
	DeleteExpired(ctx context.Context, now time.Time) error
}
