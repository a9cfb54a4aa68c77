package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
	"github.com/moodmate/auth/internal/auth/store"
	"github.com/moodmate/auth/pkg/cryptox"
	"github.com/moodmate/auth/pkg/idx"
	"github.com/moodmate/auth/pkg/jwtx"
	"github.com/moodmate/auth/pkg/slogx"
)

var (
	ErrInvalidResetToken = errors.New("invalid_reset_token")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrWrongPassword     = errors.New("wrong_password")
)

// PasswordService implements the forgot/reset flow and in-session
// password changes.
type PasswordService struct {
	Codec    *jwtx.Codec
	Store    store.Store
	ResetTTL time.Duration

	// EchoResetToken makes ForgotPassword hand the reset token back to
	// the caller instead of only delivering it out of band. Development
	// environments only.
	EchoResetToken bool
}

// ForgotPassword starts a password reset for the given email.
//
// The returned token is empty unless EchoResetToken is set. Unknown
// emails return success with no side effects so the endpoint cannot be
// used to enumerate accounts.
func (s *PasswordService) ForgotPassword(ctx context.Context, email string) (string, error) {
	now := time.Now().UTC()
	l := slogx.FromContext(ctx)

	_, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil
		}
		return "", err
	}

	resetToken, err := s.Codec.Issue(jwtx.KindReset, email, s.ResetTTL)
	if err != nil {
		return "", err
	}

	row := domain.PasswordResetToken{
		ID:        idx.New().String(),
		Email:     email,
		TokenHash: cryptox.FingerprintToken(resetToken),
		ExpiresAt: now.Add(s.ResetTTL),
		CreatedAt: now,
	}
	if err := s.Store.ResetTokens().Create(ctx, row); err != nil && !errors.Is(err, store.ErrAlreadyExists) {
		return "", err
	}

	// Delivery happens out of band; log the intent like the welcome email.
	l.Info("password reset email queued", slog.String("email", email))

	if s.EchoResetToken {
		return resetToken, nil
	}
	return "", nil
}

// ResetPassword completes a reset started by ForgotPassword.
//
// The token must verify cryptographically AND match an unused, unexpired
// stored row. Consuming the row and writing the new hash happen in one
// transaction so a token can never be spent without the password
// actually changing.
func (s *PasswordService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	now := time.Now().UTC()

	email, err := s.Codec.Verify(resetToken, jwtx.KindReset)
	if err != nil {
		return ErrInvalidResetToken
	}

	fp := cryptox.FingerprintToken(resetToken)
	row, err := s.Store.ResetTokens().GetActive(ctx, fp, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if row.Email != email {
		return ErrInvalidResetToken
	}

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
			return err
		}
		return tx.ResetTokens().MarkUsed(ctx, row.ID)
	})
}

// ChangePassword replaces the password of an authenticated user after
// re-verifying the current one.
func (s *PasswordService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, user.PasswordHash); err != nil {
		return ErrWrongPassword
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash)
}
