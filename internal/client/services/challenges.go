package services

import (
	"context"
	"fmt"

	"github.com/pablomagana/recomenzar/internal/client/models"
	"github.com/pablomagana/recomenzar/internal/common"
)

// ChallengeAPI is the slice of the challenges endpoint client the service needs.
type ChallengeAPI interface {
	List(ctx context.Context) ([]models.Challenge, error)
	Create(ctx context.Context, nombre string) (*models.Challenge, error)
	Delete(ctx context.Context, id string) error
}

// ChallengeService defines the weekly challenge operations of the CLI.
// Add enforces the limit of models.MaxChallenges locally, before any
// network call.
type ChallengeService interface {
	List(ctx context.Context) ([]models.Challenge, error)
	Add(ctx context.Context, nombre string) (*models.Challenge, error)
	Remove(ctx context.Context, id string) error
}

type challengeService struct {
	api ChallengeAPI
}

func NewChallengeService(api ChallengeAPI) ChallengeService {
	return &challengeService{api: api}
}

func (s *challengeService) List(ctx context.Context) ([]models.Challenge, error) {
	return s.api.List(ctx)
}

func (s *challengeService) Add(ctx context.Context, nombre string) (*models.Challenge, error) {
	existing, err := s.api.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing challenges: %w", err)
	}
	if len(existing) >= models.MaxChallenges {
		return nil, common.ErrChallengeLimit
	}
	return s.api.Create(ctx, nombre)
}

func (s *challengeService) Remove(ctx context.Context, id string) error {
	return s.api.Delete(ctx, id)
}
