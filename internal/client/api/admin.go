package api

import (
	"context"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

// AdminClient wraps the /admin endpoints. The backend enforces the role;
// the client just surfaces the resulting 401/403 as ErrUnauthorized.
type AdminClient struct {
	g *Gateway
}

func NewAdminClient(g *Gateway) *AdminClient {
	return &AdminClient{g: g}
}

func (c *AdminClient) Users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.g.get(ctx, "/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *AdminClient) User(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := c.g.get(ctx, "/admin/users/"+id, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AdminClient) CreateUser(ctx context.Context, req models.AdminCreateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.g.post(ctx, "/admin/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AdminClient) UpdateUser(ctx context.Context, id string, req models.AdminUpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := c.g.put(ctx, "/admin/users/"+id, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *AdminClient) DeleteUser(ctx context.Context, id string) error {
	return c.g.delete(ctx, "/admin/users/"+id)
}

func (c *AdminClient) Dashboard(ctx context.Context) ([]models.DashboardEntry, error) {
	var entries []models.DashboardEntry
	if err := c.g.get(ctx, "/admin/dashboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
