package auth_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	httpapi "github.com/moodmate/auth/internal/auth/http"
	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/internal/auth/store/drivers/sqlite"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

/*
 * Common helpers for auth service end-to-end tests. Each test boots the
 * full service (store, services, router) in-process against a throwaway
 * SQLite file and drives it through the public API client.
 */

const (
	testSecretKey = "e2e-test-secret"
	testPassword  = "S3cret-password!"
)

var emailCounter atomic.Int64

// uniqueEmail returns an email address unused by any other test in this run.
func uniqueEmail() string {
	return fmt.Sprintf("user%d@example.com", emailCounter.Add(1))
}

// setupAuthService boots the full HTTP stack in-process and returns an API
// client pointed at it. The server and database are torn down with the test.
func setupAuthService(t *testing.T) *authapi.Client {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "auth_e2e.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec := jwtx.NewCodec([]byte(testSecretKey))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := httpapi.NewRouter(codec, []string{"*"}, "e2e", st, logger)
	router.AuthService = &service.AuthService{
		Codec:      codec,
		Store:      st,
		AccessTTL:  30 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}
	router.UserService = &service.UserService{Store: st}
	router.PasswordService = &service.PasswordService{
		Codec:          codec,
		Store:          st,
		ResetTTL:       time.Hour,
		EchoResetToken: true,
	}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return authapi.NewClient(server.URL)
}

// registerUser creates an account through the public API and asserts the
// returned bundle is complete.
func registerUser(t *testing.T, client *authapi.Client, email string) *authapi.TokenBundle {
	t.Helper()

	bundle, err := client.Register(context.Background(), authapi.RegisterRequest{
		Name:     "E2E User",
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)
	assertTokenBundle(t, bundle)
	require.Equal(t, email, bundle.User.Email)

	return bundle
}

// assertTokenBundle verifies a token bundle has all required fields.
func assertTokenBundle(t *testing.T, bundle *authapi.TokenBundle) {
	t.Helper()
	require.NotNil(t, bundle)
	require.NotEmpty(t, bundle.AccessToken, "Access token should not be empty")
	require.NotEmpty(t, bundle.RefreshToken, "Refresh token should not be empty")
	require.Equal(t, "bearer", bundle.TokenType, "Token type should be bearer")
	require.True(t, bundle.User.IsActive, "Fresh accounts should be active")
}

// assertAPIError checks that err is an *authapi.APIError with the given
// status code and detail message.
func assertAPIError(t *testing.T, err error, statusCode int, detail string) {
	t.Helper()
	require.Error(t, err)

	var apiErr *authapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, detail, apiErr.Detail)
}
