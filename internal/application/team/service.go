package team

import (
	"context"
	"errors"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
)

type Service interface {
	List(ctx context.Context) ([]domain.Team, error)
	Get(ctx context.Context, teamID string) (*domain.TeamDetail, error)
}

type teamStore interface {
	Scan(ctx context.Context) ([]domain.Team, error)
	Get(ctx context.Context, teamID string) (*domain.Team, error)
}

type systemStore interface {
	ListByTeam(ctx context.Context, teamID string) ([]domain.System, error)
}

type service struct {
	repo    teamStore
	systems systemStore
}

func NewService(repo teamStore, systems systemStore) Service {
	return &service{repo: repo, systems: systems}
}

func (s *service) List(ctx context.Context) ([]domain.Team, error) {
	teams, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	if teams == nil {
		teams = []domain.Team{}
	}
	return teams, nil
}

func (s *service) Get(ctx context.Context, teamID string) (*domain.TeamDetail, error) {
	t, err := s.repo.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingTeam)
		}
		return nil, err
	}
	systems, err := s.systems.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return &domain.TeamDetail{Team: *t, Systems: systems}, nil
}
