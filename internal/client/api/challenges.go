package api

import (
	"context"

	"github.com/pablomagana/recomenzar/internal/client/models"
)

// ChallengesClient wraps the /challenges endpoints.
type ChallengesClient struct {
	g *Gateway
}

func NewChallengesClient(g *Gateway) *ChallengesClient {
	return &ChallengesClient{g: g}
}

func (c *ChallengesClient) List(ctx context.Context) ([]models.Challenge, error) {
	var challenges []models.Challenge
	if err := c.g.get(ctx, "/challenges", nil, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (c *ChallengesClient) Create(ctx context.Context, nombre string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := c.g.post(ctx, "/challenges", map[string]string{"nombre": nombre}, &challenge); err != nil {
		return nil, err
	}
	return &challenge, nil
}

func (c *ChallengesClient) Delete(ctx context.Context, id string) error {
	return c.g.delete(ctx, "/challenges/"+id)
}
