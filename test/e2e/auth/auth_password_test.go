package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/moodmate/auth/pkg/authapi"
	"github.com/stretchr/testify/require"
)

// TestPasswordResetFlow walks the forgot/reset flow end to end, including
// the anti-enumeration behaviour and single-use token enforcement.
func TestPasswordResetFlow(t *testing.T) {
	client := setupAuthService(t)
	ctx := context.Background()
	email := uniqueEmail()

	registerUser(t, client, email)

	var resetToken string

	t.Run("forgot password responds identically for unknown emails", func(t *testing.T) {
		known, err := client.ForgotPassword(ctx, email)
		require.NoError(t, err)
		unknown, err := client.ForgotPassword(ctx, "ghost@example.com")
		require.NoError(t, err)

		require.Equal(t, authapi.MsgResetLinkSent, known.Message)
		require.Equal(t, known.Message, unknown.Message)

		// Development mode hands the token back; only for real accounts.
		require.NotEmpty(t, known.ResetToken)
		require.Empty(t, unknown.ResetToken)

		resetToken = known.ResetToken
	})

	t.Run("reset password with a valid token", func(t *testing.T) {
		msg, err := client.ResetPassword(ctx, resetToken, "brand-new-password")
		require.NoError(t, err)
		require.Equal(t, authapi.MsgPasswordReset, msg.Message)

		// Old password no longer works, new one does.
		_, err = client.Login(ctx, authapi.LoginRequest{Email: email, Password: testPassword})
		assertAPIError(t, err, http.StatusUnauthorized, "Incorrect email or password")

		bundle, err := client.Login(ctx, authapi.LoginRequest{Email: email, Password: "brand-new-password"})
		require.NoError(t, err)
		assertTokenBundle(t, bundle)
	})

	t.Run("reset token is single use", func(t *testing.T) {
		_, err := client.ResetPassword(ctx, resetToken, "sneaky-password")
		assertAPIError(t, err, http.StatusBadRequest, "Invalid or expired reset token")
	})

	t.Run("garbage reset token rejected", func(t *testing.T) {
		_, err := client.ResetPassword(ctx, "not-a-real-token", "whatever-password")
		assertAPIError(t, err, http.StatusBadRequest, "Invalid or expired reset token")
	})
}

// TestChangePassword covers the authenticated password change endpoint.
func TestChangePassword(t *testing.T) {
	client := setupAuthService(t)
	ctx := context.Background()
	email := uniqueEmail()

	bundle := registerUser(t, client, email)

	t.Run("requires authentication", func(t *testing.T) {
		_, err := client.ChangePassword(ctx, "", testPassword, "new-password")
		assertAPIError(t, err, http.StatusUnauthorized, "Could not validate credentials")
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		_, err := client.ChangePassword(ctx, bundle.AccessToken, "not-the-password", "new-password")
		assertAPIError(t, err, http.StatusBadRequest, "Current password is incorrect")
	})

	t.Run("changes the password", func(t *testing.T) {
		msg, err := client.ChangePassword(ctx, bundle.AccessToken, testPassword, "new-password")
		require.NoError(t, err)
		require.Equal(t, authapi.MsgPasswordChanged, msg.Message)

		_, err = client.Login(ctx, authapi.LoginRequest{Email: email, Password: testPassword})
		assertAPIError(t, err, http.StatusUnauthorized, "Incorrect email or password")

		fresh, err := client.Login(ctx, authapi.LoginRequest{Email: email, Password: "new-password"})
		require.NoError(t, err)
		assertTokenBundle(t, fresh)
	})
}
