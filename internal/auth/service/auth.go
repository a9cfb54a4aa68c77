package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/moodmate/auth/internal/auth/domain"
	"github.com/moodmate/auth/internal/auth/store"
	"github.com/moodmate/auth/pkg/cryptox"
	"github.com/moodmate/auth/pkg/idx"
	"github.com/moodmate/auth/pkg/jwtx"
	"github.com/moodmate/auth/pkg/slogx"
)

var (
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInactiveUser       = errors.New("inactive_user")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
	ErrRefreshNotActive   = errors.New("refresh_token_not_active")
	ErrRefreshUser        = errors.New("refresh_user_not_found")
)

const avatarURLBase = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// AuthService implements registration, login, session refresh, and logout.
type AuthService struct {
	Codec      *jwtx.Codec
	Store      store.Store
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Register creates a new account and opens a session for it.
//
// The email is the account's unique handle. A default avatar is derived
// from it so freshly registered users never render without one.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.TokenBundle, error) {
	now := time.Now().UTC()
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	avatar := avatarURLBase + url.QueryEscape(email)
	userID, err := s.Store.Users().Create(ctx, domain.User{
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		AvatarURL:    &avatar,
		IsActive:     true,
		CreatedAt:    now,
		LastLogin:    &now,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// The welcome email goes out through a side channel; we only record
	// the intent here.
	l.Info("welcome email queued",
		slog.String("email", user.Email),
		slog.Int64("user_id", user.ID),
	)

	return s.openSession(ctx, user, now)
}

// Login verifies the credentials and opens a session.
//
// Unknown emails and wrong passwords fail identically so callers cannot
// probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.TokenBundle, error) {
	now := time.Now().UTC()
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login password verification failed", slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	if err := s.Store.Users().UpdateLastLogin(ctx, user.ID, now); err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return s.openSession(ctx, user, now)
}

// Refresh exchanges a valid refresh token for a new access token.
//
// The token must verify cryptographically AND match a live stored row:
// a signature that checks out is not enough once the session has been
// logged out.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	now := time.Now().UTC()

	subject, err := s.Codec.Verify(refreshToken, jwtx.KindRefresh)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return "", ErrInvalidRefresh
	}

	fp := cryptox.FingerprintToken(refreshToken)
	if _, err := s.Store.RefreshTokens().GetActive(ctx, fp, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrRefreshNotActive
		}
		return "", err
	}

	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrRefreshUser
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrRefreshUser
	}

	return s.Codec.Issue(jwtx.KindAccess, user.Email, s.AccessTTL)
}

// Logout revokes the session behind the given refresh token. Revoking a
// token that is unknown or already revoked is not an error; logout is
// idempotent.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	fp := cryptox.FingerprintToken(refreshToken)

	err := s.Store.RefreshTokens().Revoke(ctx, fp)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// openSession issues the access/refresh pair and persists the refresh
// token's fingerprint so it can later be revoked or double-checked.
func (s *AuthService) openSession(ctx context.Context, user domain.User, now time.Time) (*domain.TokenBundle, error) {
	accessToken, err := s.Codec.Issue(jwtx.KindAccess, user.Email, s.AccessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.Codec.Issue(jwtx.KindRefresh, strconv.FormatInt(user.ID, 10), s.RefreshTTL)
	if err != nil {
		return nil, err
	}

	row := domain.RefreshToken{
		ID:        idx.New().String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(refreshToken),
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
	}
	if err := s.Store.RefreshTokens().Create(ctx, row); err != nil {
		return nil, fmt.Errorf("persist refresh token: %w", err)
	}

	return &domain.TokenBundle{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
