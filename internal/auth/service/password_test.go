package service

import (
	"context"
	"testing"
	"time"

	"github.com/moodmate/auth/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func newPasswordService(t *testing.T, svc *AuthService) *PasswordService {
	t.Helper()

	return &PasswordService{
		Codec:          svc.Codec,
		Store:          svc.Store,
		ResetTTL:       time.Hour,
		EchoResetToken: true,
	}
}

func TestForgotPassword(t *testing.T) {
	ctx := context.Background()
	authSvc := newAuthService(t)
	pwSvc := newPasswordService(t, authSvc)

	_, err := authSvc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	t.Run("known email yields a reset token", func(t *testing.T) {
		token, err := pwSvc.ForgotPassword(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		subject, err := pwSvc.Codec.Verify(token, jwtx.KindReset)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", subject)
	})

	t.Run("unknown email succeeds without a token", func(t *testing.T) {
		token, err := pwSvc.ForgotPassword(ctx, "nobody@example.com")
		require.NoError(t, err)
		require.Empty(t, token)
	})

	t.Run("token withheld outside development", func(t *testing.T) {
		prodSvc := newPasswordService(t, authSvc)
		prodSvc.EchoResetToken = false

		token, err := prodSvc.ForgotPassword(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Empty(t, token)
	})
}

func TestResetPassword(t *testing.T) {
	ctx := context.Background()
	authSvc := newAuthService(t)
	pwSvc := newPasswordService(t, authSvc)

	_, err := authSvc.Register(ctx, "alice@example.com", "Alice", "old-password")
	require.NoError(t, err)

	token, err := pwSvc.ForgotPassword(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, pwSvc.ResetPassword(ctx, token, "new-password"))

	// Old password no longer works, new one does.
	_, err = authSvc.Login(ctx, "alice@example.com", "old-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, "alice@example.com", "new-password")
	require.NoError(t, err)

	t.Run("token is single use", func(t *testing.T) {
		err := pwSvc.ResetPassword(ctx, token, "another-password")
		require.ErrorIs(t, err, ErrInvalidResetToken)

		_, err = authSvc.Login(ctx, "alice@example.com", "new-password")
		require.NoError(t, err)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		err := pwSvc.ResetPassword(ctx, "not.a.token", "whatever-password")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("other token kinds rejected", func(t *testing.T) {
		bundle, err := authSvc.Login(ctx, "alice@example.com", "new-password")
		require.NoError(t, err)

		err = pwSvc.ResetPassword(ctx, bundle.AccessToken, "whatever-password")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})

	t.Run("signed token without stored row rejected", func(t *testing.T) {
		forged, err := pwSvc.Codec.Issue(jwtx.KindReset, "alice@example.com", time.Hour)
		require.NoError(t, err)

		err = pwSvc.ResetPassword(ctx, forged, "whatever-password")
		require.ErrorIs(t, err, ErrInvalidResetToken)
	})
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	authSvc := newAuthService(t)
	pwSvc := newPasswordService(t, authSvc)

	bundle, err := authSvc.Register(ctx, "alice@example.com", "Alice", "old-password")
	require.NoError(t, err)

	t.Run("wrong current password rejected", func(t *testing.T) {
		err := pwSvc.ChangePassword(ctx, bundle.User.ID, "not-the-password", "new-password")
		require.ErrorIs(t, err, ErrWrongPassword)
	})

	t.Run("correct current password accepted", func(t *testing.T) {
		require.NoError(t, pwSvc.ChangePassword(ctx, bundle.User.ID, "old-password", "new-password"))

		_, err := authSvc.Login(ctx, "alice@example.com", "new-password")
		require.NoError(t, err)
	})

	t.Run("unknown user rejected", func(t *testing.T) {
		err := pwSvc.ChangePassword(ctx, bundle.User.ID+999, "old-password", "new-password")
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}
