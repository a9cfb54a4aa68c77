package service

import (
	"context"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/moodmate/auth/internal/auth/store"
	"github.com/moodmate/auth/internal/auth/store/drivers/sqlite"
	"github.com/moodmate/auth/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Codec:      jwtx.NewCodec([]byte("test-secret")),
		Store:      newTestStore(t),
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

func TestRegisterIssuesSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	bundle, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)
	require.NotEmpty(t, bundle.AccessToken)
	require.NotEmpty(t, bundle.RefreshToken)

	require.Equal(t, "alice@example.com", bundle.User.Email)
	require.Equal(t, "Alice", bundle.User.Name)
	require.True(t, bundle.User.IsActive)
	// Registration opens a session, so the returned user already carries
	// a last-login stamp.
	require.NotNil(t, bundle.User.LastLogin)
	require.NotNil(t, bundle.User.AvatarURL)
	require.Contains(t, *bundle.User.AvatarURL, "dicebear.com")
	require.Contains(t, *bundle.User.AvatarURL, "seed=alice%40example.com")

	// The access token identifies the user by email, the refresh token
	// by numeric id.
	subject, err := svc.Codec.Verify(bundle.AccessToken, jwtx.KindAccess)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", subject)

	subject, err = svc.Codec.Verify(bundle.RefreshToken, jwtx.KindRefresh)
	require.NoError(t, err)
	require.Equal(t, strconv.FormatInt(bundle.User.ID, 10), subject)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice@example.com", "Imposter", "another-password")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	_, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		bundle, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
		require.NoError(t, err)
		require.NotEmpty(t, bundle.AccessToken)
		require.NotEmpty(t, bundle.RefreshToken)
		require.NotNil(t, bundle.User.LastLogin)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errWrongPassword := svc.Login(ctx, "alice@example.com", "not-the-password")
		_, errUnknownEmail := svc.Login(ctx, "nobody@example.com", "s3cret-password")

		require.ErrorIs(t, errWrongPassword, ErrInvalidCredentials)
		require.ErrorIs(t, errUnknownEmail, ErrInvalidCredentials)
	})

	t.Run("each login gets its own refresh token", func(t *testing.T) {
		first, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
		require.NoError(t, err)
		second, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
		require.NoError(t, err)
		require.NotEqual(t, first.RefreshToken, second.RefreshToken)
	})
}

func TestInactiveUserRejected(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	bundle, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	require.NoError(t, svc.Store.Users().SetActive(ctx, bundle.User.ID, false))

	t.Run("login rejected even with correct password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
		require.ErrorIs(t, err, ErrInactiveUser)
	})

	t.Run("refresh rejected even with a live token row", func(t *testing.T) {
		_, err := svc.Refresh(ctx, bundle.RefreshToken)
		require.ErrorIs(t, err, ErrRefreshUser)
	})

	t.Run("reactivation restores both", func(t *testing.T) {
		require.NoError(t, svc.Store.Users().SetActive(ctx, bundle.User.ID, true))

		_, err := svc.Login(ctx, "alice@example.com", "s3cret-password")
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, bundle.RefreshToken)
		require.NoError(t, err)
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	bundle, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	t.Run("valid refresh token yields new access token", func(t *testing.T) {
		accessToken, err := svc.Refresh(ctx, bundle.RefreshToken)
		require.NoError(t, err)

		subject, err := svc.Codec.Verify(accessToken, jwtx.KindAccess)
		require.NoError(t, err)
		require.Equal(t, "alice@example.com", subject)
	})

	t.Run("access token cannot be used as refresh token", func(t *testing.T) {
		_, err := svc.Refresh(ctx, bundle.AccessToken)
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		_, err := svc.Refresh(ctx, "not.a.token")
		require.ErrorIs(t, err, ErrInvalidRefresh)
	})

	t.Run("refresh token with valid signature but no stored row rejected", func(t *testing.T) {
		forged, err := svc.Codec.Issue(jwtx.KindRefresh, strconv.FormatInt(bundle.User.ID, 10), time.Hour)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, forged)
		require.ErrorIs(t, err, ErrRefreshNotActive)
	})
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	bundle, err := svc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, bundle.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, bundle.RefreshToken))

	_, err = svc.Refresh(ctx, bundle.RefreshToken)
	require.ErrorIs(t, err, ErrRefreshNotActive)

	// Logout is idempotent: revoking again, or revoking garbage, is fine.
	require.NoError(t, svc.Logout(ctx, bundle.RefreshToken))
	require.NoError(t, svc.Logout(ctx, "never-issued"))
}

func TestUserServiceUpdateProfile(t *testing.T) {
	ctx := context.Background()
	authSvc := newAuthService(t)
	userSvc := &UserService{Store: authSvc.Store}

	bundle, err := authSvc.Register(ctx, "alice@example.com", "Alice", "s3cret-password")
	require.NoError(t, err)

	name := "Alice Cooper"
	updated, err := userSvc.UpdateProfile(ctx, bundle.User.ID, &name, nil)
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", updated.Name)
	require.Equal(t, bundle.User.AvatarURL, updated.AvatarURL)

	// No fields set is a read.
	same, err := userSvc.UpdateProfile(ctx, bundle.User.ID, nil, nil)
	require.NoError(t, err)
	require.Equal(t, updated, same)
}
