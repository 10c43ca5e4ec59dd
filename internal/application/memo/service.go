package memo

import (
	"context"
	"errors"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/sns"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/id"
)

// DynamoDB attribute name used in partial update maps.
const fieldContent = "content"

type Service interface {
	Create(ctx context.Context, writerID string, in domain.CreateMemoInput) (*domain.Memo, error)
	Get(ctx context.Context, memoID string) (*domain.Memo, error)
	Update(ctx context.Context, memoID string, in domain.UpdateMemoInput) (*domain.Memo, error)
	Delete(ctx context.Context, memoID string) error
}

type memoStore interface {
	Put(ctx context.Context, m *domain.Memo) error
	Get(ctx context.Context, memoID string) (*domain.Memo, error)
	GetBySystemQuality(ctx context.Context, systemQualityID string) (*domain.Memo, error)
	Update(ctx context.Context, memoID string, updates map[string]interface{}) error
	Delete(ctx context.Context, memoID string) error
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
}

type service struct {
	repo      memoStore
	users     userStore
	publisher sns.Publisher
}

type ServiceDeps struct {
	MemoRepo  memoStore
	UserRepo  userStore
	Publisher sns.Publisher
}

func NewService(deps ServiceDeps) Service {
	pub := deps.Publisher
	if pub == nil {
		pub = sns.NopPublisher{}
	}
	return &service{repo: deps.MemoRepo, users: deps.UserRepo, publisher: pub}
}

// Create attaches a memo to a system quality record. Each record holds at most one memo.
func (s *service) Create(ctx context.Context, writerID string, in domain.CreateMemoInput) (*domain.Memo, error) {
	if _, err := s.users.Get(ctx, writerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingUser)
		}
		return nil, err
	}
	_, err := s.repo.GetBySystemQuality(ctx, in.SystemQualityID)
	switch {
	case err == nil:
		return nil, domain.Duplicated(domain.DuplicateMemo)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	now := time.Now().UTC()
	m := &domain.Memo{
		MemoID:          id.New(),
		SystemQualityID: in.SystemQualityID,
		WriterID:        writerID,
		Content:         in.Content,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.Put(ctx, m); err != nil {
		// Lost a race with a concurrent create for the same record.
		if errors.Is(err, domain.ErrConflict) {
			return nil, domain.Duplicated(domain.DuplicateMemo)
		}
		return nil, err
	}
	s.publisher.Publish(ctx, sns.EventMemoCreated, m)
	return m, nil
}

func (s *service) Get(ctx context.Context, memoID string) (*domain.Memo, error) {
	m, err := s.repo.Get(ctx, memoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingMemo)
		}
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, memoID string, in domain.UpdateMemoInput) (*domain.Memo, error) {
	m, err := s.Get(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, memoID, map[string]interface{}{fieldContent: in.Content}); err != nil {
		return nil, err
	}
	m.Content = in.Content
	m.UpdatedAt = time.Now().UTC()
	s.publisher.Publish(ctx, sns.EventMemoUpdated, m)
	return m, nil
}

func (s *service) Delete(ctx context.Context, memoID string) error {
	if err := s.repo.Delete(ctx, memoID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound(domain.MissingMemo)
		}
		return err
	}
	s.publisher.Publish(ctx, sns.EventMemoDeleted, map[string]string{"memoId": memoID})
	return nil
}
