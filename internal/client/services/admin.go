package services

import (
	"context"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

// AdminAPI is the slice of the admin endpoint client the service needs.
type AdminAPI interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req models.AdminCreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.AdminUpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Dashboard(ctx context.Context) ([]models.DashboardEntry, error)
}

// AdminService defines the administration operations of the CLI. The
// backend enforces the admin role; a non-admin caller gets
// common.ErrUnauthorized straight from the transport layer.
type AdminService interface {
	Users(ctx context.Context) ([]models.User, error)
	User(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, req models.AdminCreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id string, req models.AdminUpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	Dashboard(ctx context.Context) ([]models.DashboardEntry, error)
}

type adminService struct {
	api AdminAPI
}

func NewAdminService(api AdminAPI) AdminService {
	return &adminService{api: api}
}

func (s *adminService) Users(ctx context.Context) ([]models.User, error) {
	return s.api.Users(ctx)
}

func (s *adminService) User(ctx context.Context, id string) (*models.User, error) {
	return s.api.User(ctx, id)
}

func (s *adminService) CreateUser(ctx context.Context, req models.AdminCreateUserRequest) (*models.User, error) {
	return s.api.CreateUser(ctx, req)
}

func (s *adminService) UpdateUser(ctx context.Context, id string, req models.AdminUpdateUserRequest) (*models.User, error) {
	return s.api.UpdateUser(ctx, id, req)
}

func (s *adminService) DeleteUser(ctx context.Context, id string) error {
	return s.api.DeleteUser(ctx, id)
}

func (s *adminService) Dashboard(ctx context.Context) ([]models.DashboardEntry, error) {
	return s.api.Dashboard(ctx)
}
