package http

import (
	"github.com/moodmate/auth/internal/auth/domain"
	"github.com/moodmate/auth/pkg/authapi"
)

func toUserResponse(u domain.User) authapi.UserResponse {
	return authapi.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

func toTokenBundle(b *domain.TokenBundle) authapi.TokenBundle {
	return authapi.TokenBundle{
		AccessToken:  b.AccessToken,
		RefreshToken: b.RefreshToken,
		TokenType:    "bearer",
		User:         toUserResponse(b.User),
	}
}
