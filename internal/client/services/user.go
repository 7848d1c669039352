package services

import (
	"context"
	"fmt"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

// UserAPI is the slice of the users endpoint client the service needs.
type UserAPI interface {
	Me(ctx context.Context) (*models.User, error)
	UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}

// SessionUpdater keeps the persisted session user in step with the
// profile the backend returns.
type SessionUpdater interface {
	UpdateUser(ctx context.Context, user models.User) error
}

// UserService defines the profile operations of the CLI. Fetching or
// updating the profile writes the returned user back into the session,
// so the prompt and persisted state never go stale.
type UserService interface {
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}

type userService struct {
	api     UserAPI
	session SessionUpdater
}

func NewUserService(api UserAPI, session SessionUpdater) UserService {
	return &userService{api: api, session: session}
}

func (s *userService) Profile(ctx context.Context) (*models.User, error) {
	user, err := s.api.Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.session.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update session user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.api.UpdateMe(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.session.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update session user: %w", err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return s.api.ChangePassword(ctx, req)
}
