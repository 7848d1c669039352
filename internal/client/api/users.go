package api

import (
	"context"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

// UsersClient wraps the /users/me endpoints.
type UsersClient struct {
	g *Gateway
}

func NewUsersClient(g *Gateway) *UsersClient {
	return &UsersClient{g: g}
}

func (c *UsersClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.g.get(ctx, "/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) UpdateMe(ctx context.Context, req models.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := c.g.put(ctx, "/users/me", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *UsersClient) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.g.patch(ctx, "/users/me/password", req, nil)
}
