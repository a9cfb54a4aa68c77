package domain

import "time"

// TokenBundle is what register and login return: the signed access token,
// the signed refresh token, and the account they belong to.
type TokenBundle struct {
	AccessToken  string
	RefreshToken string
	User         User
}

// RefreshToken models the stored refresh token record. The row holds a
// SHA-256 fingerprint of the token string, never the token itself. A token
// is usable only while unrevoked and unexpired; logout flips Revoked.
type RefreshToken struct {
	ID        string // ULID
	UserID    int64
	TokenHash string // base64url SHA-256 fingerprint
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
}

// PasswordResetToken models a one-time password recovery credential,
// redeemable at most once and only before its expiry.
type PasswordResetToken struct {
	ID        string // ULID
	Email     string
	TokenHash string // base64url SHA-256 fingerprint
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}
