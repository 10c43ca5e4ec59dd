package system

import (
	"context"
	"errors"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
)

type Service interface {
	Get(ctx context.Context, systemID string) (*domain.System, error)
	Qualities(ctx context.Context, systemID string) ([]domain.SystemQuality, error)
}

type systemStore interface {
	Get(ctx context.Context, systemID string) (*domain.System, error)
}

type qualityStore interface {
	ListBySystem(ctx context.Context, systemID string) ([]domain.SystemQuality, error)
}

type service struct {
	repo      systemStore
	qualities qualityStore
}

func NewService(repo systemStore, qualities qualityStore) Service {
	return &service{repo: repo, qualities: qualities}
}

func (s *service) Get(ctx context.Context, systemID string) (*domain.System, error) {
	sys, err := s.repo.Get(ctx, systemID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingSystem)
		}
		return nil, err
	}
	return sys, nil
}

// Qualities lists the weekly measurements of an existing system.
func (s *service) Qualities(ctx context.Context, systemID string) ([]domain.SystemQuality, error) {
	if _, err := s.Get(ctx, systemID); err != nil {
		return nil, err
	}
	return s.qualities.ListBySystem(ctx, systemID)
}
