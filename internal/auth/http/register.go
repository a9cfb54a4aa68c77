package http

import (
	"errors"
	"net/http"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account and open a session for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.RegisterRequest	true	"name, email, password"
//	@Success		200		{object}	authapi.TokenBundle		"access_token, refresh_token, token_type, user"
//	@Failure		400		{object}	authapi.APIError		"detail"
//	@Failure		500		{object}	authapi.APIError		"detail"
//	@Router			/api/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RegisterRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}
	if req.Email == "" || req.Name == "" || req.Password == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	bundle, err := h.AuthService.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			authapi.ErrEmailRegistered.WriteError(w)
			return
		}
		log.Error("failed to register user", "err", err)
		authapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toTokenBundle(bundle))
}
