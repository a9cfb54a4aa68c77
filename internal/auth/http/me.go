package http

import (
	"errors"
	"net/http"

	"github.com/moodmate/auth/internal/auth/domain"
	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/internal/auth/store"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type MeHandler struct {
	UserService *service.UserService
}

// currentUser resolves the bearer token's subject to a live account. A
// verified token whose account has since vanished or been deactivated
// does not get through. On failure the error response is already written.
func currentUser(w http.ResponseWriter, r *http.Request, users *service.UserService) (domain.User, bool) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	email, ok := httpx.SubjectFromCtx(ctx)
	if !ok || email == "" {
		authapi.ErrInvalidToken.WriteError(w)
		return domain.User{}, false
	}

	user, err := users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			authapi.ErrInvalidToken.WriteError(w)
			return domain.User{}, false
		}
		log.Error("failed to load user", "err", err)
		authapi.ErrServerError.WriteError(w)
		return domain.User{}, false
	}
	if !user.IsActive {
		authapi.ErrInactiveUser.WriteError(w)
		return domain.User{}, false
	}

	return user, true
}

// HandleGet godoc
//
//	@Summary		Get Profile Endpoint
//	@Description	Returns the authenticated user's profile
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authapi.UserResponse	"id, email, name, avatar_url, is_active, created_at, last_login"
//	@Failure		400	{object}	authapi.APIError		"detail"
//	@Failure		401	{object}	authapi.APIError		"detail"
//	@Failure		500	{object}	authapi.APIError		"detail"
//	@Router			/api/v1/auth/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r, h.UserService)
	if !ok {
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleUpdate godoc
//
//	@Summary		Update Profile Endpoint
//	@Description	Updates the authenticated user's display name and/or avatar URL. Omitted fields are left untouched.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.UpdateProfileRequest	true	"name, avatar_url"
//	@Success		200		{object}	authapi.UserResponse			"updated profile"
//	@Failure		400		{object}	authapi.APIError				"detail"
//	@Failure		401		{object}	authapi.APIError				"detail"
//	@Failure		500		{object}	authapi.APIError				"detail"
//	@Router			/api/v1/auth/me [put].
func (h *MeHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := currentUser(w, r, h.UserService)
	if !ok {
		return
	}

	var req authapi.UpdateProfileRequest
	if err := httpx.ReadJSON(r, &req); err != nil {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	updated, err := h.UserService.UpdateProfile(ctx, user.ID, req.Name, req.AvatarURL)
	if err != nil {
		log.Error("failed to update profile", "user_id", user.ID, "err", err)
		authapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(updated))
}
