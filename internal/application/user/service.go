package user

import (
	"context"
	"errors"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
)

// DynamoDB attribute names used in partial update maps.
const fieldStatus = "status"

type Service interface {
	Me(ctx context.Context, userID string) (*domain.User, error)
	Withdraw(ctx context.Context, userID string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

// Me returns the caller's own account. A withdrawn account is treated as
// unauthenticated even if its token has not expired yet.
func (s *service) Me(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingUser)
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, domain.Unauthorized("withdrawn")
	}
	return u, nil
}

func (s *service) Withdraw(ctx context.Context, userID string) error {
	if _, err := s.Me(ctx, userID); err != nil {
		return err
	}
	return s.repo.Update(ctx, userID, map[string]interface{}{fieldStatus: domain.UserStatusWithdrawal})
}
