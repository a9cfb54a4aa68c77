package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client talks to the MoodMate authentication service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns its token bundle.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*TokenBundle, error) {
	var bundle TokenBundle
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", "", req, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Login exchanges credentials for a token bundle.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*TokenBundle, error) {
	var bundle TokenBundle
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", "", req, &bundle); err != nil {
		return nil, err
	}
	return &bundle, nil
}

// Me returns the account owning the access token.
func (c *Client) Me(ctx context.Context, accessToken string) (*UserResponse, error) {
	var user UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/v1/auth/me", accessToken, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies the non-nil fields of req to the authenticated account.
func (c *Client) UpdateMe(ctx context.Context, accessToken string, req UpdateProfileRequest) (*UserResponse, error) {
	var user UserResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/auth/me", accessToken, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*AccessTokenResponse, error) {
	var resp AccessTokenResponse
	req := RefreshTokenRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/refresh", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout revokes a refresh token. It succeeds even for unknown tokens.
func (c *Client) Logout(ctx context.Context, refreshToken string) (*MessageResponse, error) {
	var resp MessageResponse
	req := RefreshTokenRequest{RefreshToken: refreshToken}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ForgotPassword requests a password-reset link for email. The response is
// identical whether or not an account exists.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	var resp MessageResponse
	req := ForgotPasswordRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/forgot-password", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ResetPassword redeems a reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	var resp MessageResponse
	req := ResetPasswordRequest{Token: token, NewPassword: newPassword}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/reset-password", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangePassword changes the authenticated account's password.
func (c *Client) ChangePassword(ctx context.Context, accessToken, current, next string) (*MessageResponse, error) {
	var resp MessageResponse
	req := ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/change-password", accessToken, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Livez checks that the service process is up.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/livez", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Readyz checks that the service and its dependencies are ready for traffic.
func (c *Client) Readyz(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.do(ctx, http.MethodGet, "/readyz", "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// do performs a JSON request and decodes the response into out. Non-2xx
// responses come back as *APIError.
func (c *Client) do(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body *bytes.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("authapi: encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("authapi: create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("authapi: send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil || apiErr.Detail == "" {
			apiErr.Detail = http.StatusText(resp.StatusCode)
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("authapi: decode response: %w", err)
	}
	return nil
}
