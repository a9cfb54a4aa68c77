package http

import (
	"errors"
	"net/http"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Refresh Endpoint
//	@Description	Exchange a valid refresh token for a new access token. The refresh token itself is not rotated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.RefreshTokenRequest	true	"refresh_token"
//	@Success		200		{object}	authapi.AccessTokenResponse	"access_token, token_type"
//	@Failure		400		{object}	authapi.APIError			"detail"
//	@Failure		401		{object}	authapi.APIError			"detail"
//	@Failure		500		{object}	authapi.APIError			"detail"
//	@Router			/api/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RefreshTokenRequest
	if err := httpx.ReadJSON(r, &req); err != nil || req.RefreshToken == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	accessToken, err := h.AuthService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			authapi.ErrInvalidRefresh.WriteError(w)
		case errors.Is(err, service.ErrRefreshNotActive):
			authapi.ErrExpiredRefresh.WriteError(w)
		case errors.Is(err, service.ErrRefreshUser):
			authapi.ErrRefreshUser.WriteError(w)
		default:
			log.Error("failed to refresh session", "err", err)
			authapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.AccessTokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}
