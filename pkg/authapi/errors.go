package authapi

import (
	"fmt"
	"net/http"

	"github.com/moodmate/auth/pkg/httpx"
)

// APIError is a failure response: an HTTP status code and a fixed, generic
// detail message. Messages deliberately reveal nothing about which check
// failed (anti-enumeration) and never carry internal identifiers.
//
// It implements the error interface so the client can return it directly.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Detail is the fixed human-readable message
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Detail)
}

// WriteError writes this APIError to an HTTP response writer. Unauthorized
// responses carry a WWW-Authenticate challenge per RFC 6750.
func (e *APIError) WriteError(w http.ResponseWriter) {
	if e.StatusCode == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	httpx.WriteJSON(w, e.StatusCode, e)
}

// Predefined errors. Handlers translate service and store failures into
// exactly these values; nothing else crosses the wire.
var (
	// ErrInvalidBody is returned when the JSON request body cannot be decoded.
	ErrInvalidBody = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Invalid request body",
	}

	// ErrEmailRegistered is returned on a register attempt with an email that
	// already has an account. Uniqueness violations from the store surface as
	// this same response.
	ErrEmailRegistered = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Email already registered",
	}

	// ErrBadCredentials is the uniform login failure: the same message for an
	// unknown email and a wrong password.
	ErrBadCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Incorrect email or password",
	}

	// ErrInactiveUser is returned for a deactivated account.
	ErrInactiveUser = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Inactive user",
	}

	// ErrInvalidToken is the uniform bearer-authentication failure.
	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Could not validate credentials",
	}

	// ErrInvalidRefresh is returned when a refresh token fails signature or
	// kind verification.
	ErrInvalidRefresh = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Invalid refresh token",
	}

	// ErrExpiredRefresh is returned when the refresh token's database row is
	// missing, revoked, or expired.
	ErrExpiredRefresh = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "Invalid or expired refresh token",
	}

	// ErrRefreshUser is returned when the refresh token's user is gone or
	// inactive.
	ErrRefreshUser = &APIError{
		StatusCode: http.StatusUnauthorized,
		Detail:     "User not found or inactive",
	}

	// ErrInvalidResetToken covers every reset-token failure: bad signature,
	// expiry, already used, or unknown row.
	ErrInvalidResetToken = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Invalid or expired reset token",
	}

	// ErrUserNotFound is returned when a reset token's embedded email no
	// longer resolves to an account.
	ErrUserNotFound = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "User not found",
	}

	// ErrWrongCurrentPassword is returned by change-password.
	ErrWrongCurrentPassword = &APIError{
		StatusCode: http.StatusBadRequest,
		Detail:     "Current password is incorrect",
	}

	// ErrResetFailed is returned when the reset-password commit fails.
	ErrResetFailed = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "Failed to reset password",
	}

	// ErrChangeFailed is returned when the change-password commit fails.
	ErrChangeFailed = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "Failed to change password",
	}

	// ErrServerError is the catch-all for unexpected persistence failures.
	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Detail:     "Internal server error",
	}
)
