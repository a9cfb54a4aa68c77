package http

import (
	"errors"
	"net/http"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Verify credentials and open a session
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.LoginRequest	true	"email, password"
//	@Success		200		{object}	authapi.TokenBundle		"access_token, refresh_token, token_type, user"
//	@Failure		400		{object}	authapi.APIError		"detail"
//	@Failure		401		{object}	authapi.APIError		"detail"
//	@Failure		500		{object}	authapi.APIError		"detail"
//	@Router			/api/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.LoginRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}
	if req.Email == "" || req.Password == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	bundle, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			authapi.ErrBadCredentials.WriteError(w)
		case errors.Is(err, service.ErrInactiveUser):
			authapi.ErrInactiveUser.WriteError(w)
		default:
			log.Error("failed to log in user", "err", err)
			authapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenBundle(bundle))
}
