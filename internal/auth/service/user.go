package service

import (
	"context"

	"github.com/moodmate/auth/internal/auth/domain"
	"github.com/moodmate/auth/internal/auth/store"
)

type UserService struct {
	Store store.Store
}

// GetUserByEmail fetches a user by email. Access tokens carry the email
// as their subject, so this is how authenticated requests resolve their
// caller.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return s.Store.Users().GetByEmail(ctx, email)
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID int64) (domain.User, error) {
	return s.Store.Users().GetByID(ctx, userID)
}

// UpdateProfile changes the user's display name and/or avatar URL. Nil
// fields are left untouched, so callers can update one without knowing
// the other.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, name, avatarURL *string) (domain.User, error) {
	if name != nil || avatarURL != nil {
		if err := s.Store.Users().UpdateProfile(ctx, userID, name, avatarURL); err != nil {
			return domain.User{}, err
		}
	}
	return s.Store.Users().GetByID(ctx, userID)
}
