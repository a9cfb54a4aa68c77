package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/moodmate/auth/pkg/authapi"
	"github.com/stretchr/testify/require"
)

// TestSessionLifecycle walks an account through the full session flow:
// register, duplicate registration, login, profile access, refresh, and
// logout invalidating the refresh token.
func TestSessionLifecycle(t *testing.T) {
	client := setupAuthService(t)
	ctx := context.Background()
	email := uniqueEmail()

	bundle := registerUser(t, client, email)

	t.Run("duplicate registration rejected", func(t *testing.T) {
		_, err := client.Register(ctx, authapi.RegisterRequest{
			Name:     "Imposter",
			Email:    email,
			Password: "another-password",
		})
		assertAPIError(t, err, http.StatusBadRequest, "Email already registered")
	})

	t.Run("login", func(t *testing.T) {
		loggedIn, err := client.Login(ctx, authapi.LoginRequest{
			Email:    email,
			Password: testPassword,
		})
		require.NoError(t, err)
		assertTokenBundle(t, loggedIn)
		require.NotNil(t, loggedIn.User.LastLogin, "Login should stamp last_login")

		bundle = loggedIn
	})

	t.Run("wrong credentials rejected uniformly", func(t *testing.T) {
		_, errWrongPassword := client.Login(ctx, authapi.LoginRequest{
			Email:    email,
			Password: "not-the-password",
		})
		_, errUnknownEmail := client.Login(ctx, authapi.LoginRequest{
			Email:    "ghost@example.com",
			Password: testPassword,
		})

		assertAPIError(t, errWrongPassword, http.StatusUnauthorized, "Incorrect email or password")
		assertAPIError(t, errUnknownEmail, http.StatusUnauthorized, "Incorrect email or password")
	})

	t.Run("me returns profile", func(t *testing.T) {
		user, err := client.Me(ctx, bundle.AccessToken)
		require.NoError(t, err)
		require.Equal(t, email, user.Email)
		require.Equal(t, bundle.User.ID, user.ID)
	})

	t.Run("me requires a valid access token", func(t *testing.T) {
		_, err := client.Me(ctx, "garbage-token")
		assertAPIError(t, err, http.StatusUnauthorized, "Could not validate credentials")

		// Refresh tokens are not access tokens.
		_, err = client.Me(ctx, bundle.RefreshToken)
		assertAPIError(t, err, http.StatusUnauthorized, "Could not validate credentials")
	})

	t.Run("refresh issues a working access token", func(t *testing.T) {
		resp, err := client.Refresh(ctx, bundle.RefreshToken)
		require.NoError(t, err)
		require.NotEmpty(t, resp.AccessToken)
		require.Equal(t, "bearer", resp.TokenType)

		user, err := client.Me(ctx, resp.AccessToken)
		require.NoError(t, err)
		require.Equal(t, email, user.Email)
	})

	t.Run("logout revokes the refresh token", func(t *testing.T) {
		msg, err := client.Logout(ctx, bundle.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, authapi.MsgLoggedOut, msg.Message)

		_, err = client.Refresh(ctx, bundle.RefreshToken)
		assertAPIError(t, err, http.StatusUnauthorized, "Invalid or expired refresh token")

		// Logout is idempotent.
		again, err := client.Logout(ctx, bundle.RefreshToken)
		require.NoError(t, err)
		require.Equal(t, authapi.MsgLoggedOut, again.Message)
	})
}

// TestProfileUpdate exercises partial profile updates through the public API.
func TestProfileUpdate(t *testing.T) {
	client := setupAuthService(t)
	ctx := context.Background()

	bundle := registerUser(t, client, uniqueEmail())

	name := "Renamed User"
	updated, err := client.UpdateMe(ctx, bundle.AccessToken, authapi.UpdateProfileRequest{
		Name: &name,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed User", updated.Name)
	require.Equal(t, bundle.User.AvatarURL, updated.AvatarURL, "Avatar should survive a name-only update")

	avatar := "https://example.com/custom.png"
	updated, err = client.UpdateMe(ctx, bundle.AccessToken, authapi.UpdateProfileRequest{
		AvatarURL: &avatar,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed User", updated.Name)
	require.NotNil(t, updated.AvatarURL)
	require.Equal(t, avatar, *updated.AvatarURL)
}

// TestSessionsAreIndependent verifies that logging out one session does not
// affect another session of the same account.
func TestSessionsAreIndependent(t *testing.T) {
	client := setupAuthService(t)
	ctx := context.Background()
	email := uniqueEmail()

	registerUser(t, client, email)

	first, err := client.Login(ctx, authapi.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	second, err := client.Login(ctx, authapi.LoginRequest{Email: email, Password: testPassword})
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = client.Logout(ctx, first.RefreshToken)
	require.NoError(t, err)

	_, err = client.Refresh(ctx, first.RefreshToken)
	assertAPIError(t, err, http.StatusUnauthorized, "Invalid or expired refresh token")

	resp, err := client.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
}
