package http

import (
	"net/http"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type LogoutHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Logout Endpoint
//	@Description	Revoke the session behind a refresh token. Idempotent: revoking an unknown or already revoked token still succeeds.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.RefreshTokenRequest	true	"refresh_token"
//	@Success		200		{object}	authapi.MessageResponse		"message"
//	@Failure		400		{object}	authapi.APIError			"detail"
//	@Failure		500		{object}	authapi.APIError			"detail"
//	@Router			/api/v1/auth/logout [post].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RefreshTokenRequest
	if err := httpx.ReadJSON(r, &req); err != nil || req.RefreshToken == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	if err := h.AuthService.Logout(ctx, req.RefreshToken); err != nil {
		log.Error("failed to revoke refresh token", "err", err)
		authapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.MessageResponse{Message: authapi.MsgLoggedOut})
}
