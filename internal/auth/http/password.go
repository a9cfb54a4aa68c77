package http

import (
	"errors"
	"net/http"

	"github.com/moodmate/auth/internal/auth/service"
	"github.com/moodmate/auth/pkg/authapi"
	"github.com/moodmate/auth/pkg/httpx"
	"github.com/moodmate/auth/pkg/slogx"
)

type ForgotPasswordHandler struct {
	PasswordService *service.PasswordService
}

// ServeHTTP godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Start a password reset. The response is identical whether or not the email is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	authapi.MessageResponse			"message, reset_token (development only)"
//	@Failure		400		{object}	authapi.APIError				"detail"
//	@Failure		500		{object}	authapi.APIError				"detail"
//	@Router			/api/v1/auth/forgot-password [post].
func (h *ForgotPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.ForgotPasswordRequest
	if err := httpx.ReadJSON(r, &req); err != nil || req.Email == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	resetToken, err := h.PasswordService.ForgotPassword(ctx, req.Email)
	if err != nil {
		log.Error("failed to start password reset", "err", err)
		authapi.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.MessageResponse{
		Message:    authapi.MsgResetLinkSent,
		ResetToken: resetToken,
	})
}

type ResetPasswordHandler struct {
	PasswordService *service.PasswordService
}

// ServeHTTP godoc
//
//	@Summary		Reset Password Endpoint
//	@Description	Complete a password reset using the token from forgot-password. Each token can be used once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.ResetPasswordRequest	true	"token, new_password"
//	@Success		200		{object}	authapi.MessageResponse			"message"
//	@Failure		400		{object}	authapi.APIError				"detail"
//	@Failure		500		{object}	authapi.APIError				"detail"
//	@Router			/api/v1/auth/reset-password [post].
func (h *ResetPasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.ResetPasswordRequest
	if err := httpx.ReadJSON(r, &req); err != nil || req.Token == "" || req.NewPassword == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	err := h.PasswordService.ResetPassword(ctx, req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken):
			authapi.ErrInvalidResetToken.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			authapi.ErrUserNotFound.WriteError(w)
		default:
			log.Error("failed to reset password", "err", err)
			authapi.ErrResetFailed.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.MessageResponse{Message: authapi.MsgPasswordReset})
}

type ChangePasswordHandler struct {
	UserService     *service.UserService
	PasswordService *service.PasswordService
}

// ServeHTTP godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Replace the authenticated user's password after re-verifying the current one
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		authapi.ChangePasswordRequest	true	"current_password, new_password"
//	@Success		200		{object}	authapi.MessageResponse			"message"
//	@Failure		400		{object}	authapi.APIError				"detail"
//	@Failure		401		{object}	authapi.APIError				"detail"
//	@Failure		500		{object}	authapi.APIError				"detail"
//	@Router			/api/v1/auth/change-password [post].
func (h *ChangePasswordHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, ok := currentUser(w, r, h.UserService)
	if !ok {
		return
	}

	var req authapi.ChangePasswordRequest
	if err := httpx.ReadJSON(r, &req); err != nil || req.CurrentPassword == "" || req.NewPassword == "" {
		authapi.ErrInvalidBody.WriteError(w)
		return
	}

	err := h.PasswordService.ChangePassword(ctx, user.ID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			authapi.ErrWrongCurrentPassword.WriteError(w)
		case errors.Is(err, service.ErrUserNotFound):
			authapi.ErrUserNotFound.WriteError(w)
		default:
			log.Error("failed to change password", "user_id", user.ID, "err", err)
			authapi.ErrChangeFailed.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, authapi.MessageResponse{Message: authapi.MsgPasswordChanged})
}
