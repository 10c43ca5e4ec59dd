package http

import (
	"context"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	jwtinfra "github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/jwt"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/infrastructure/sns"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
	ExistsByEmailAndStatus(ctx context.Context, email, status string) (bool, error)
	ExistsByNicknameAndStatus(ctx context.Context, nickname, status string) (bool, error)
	// FindOneWithAuthoritiesByEmail ignores status so that login can tell a
	// withdrawn account apart from an unknown one.
	FindOneWithAuthoritiesByEmail(ctx context.Context, email string) (*domain.User, error)
}

// AuthorityRepository is the minimal interface the router requires from an authority store.
type AuthorityRepository interface {
	Get(ctx context.Context, name string) (*domain.Authority, error)
}

// TeamRepository is the minimal interface the router requires from a team store.
type TeamRepository interface {
	Scan(ctx context.Context) ([]domain.Team, error)
	Get(ctx context.Context, teamID string) (*domain.Team, error)
}

// SystemRepository is the minimal interface the router requires from a system store.
type SystemRepository interface {
	Get(ctx context.Context, systemID string) (*domain.System, error)
	ListByTeam(ctx context.Context, teamID string) ([]domain.System, error)
}

// QualityRepository is the minimal interface the router requires from a system quality store.
type QualityRepository interface {
	ListBySystem(ctx context.Context, systemID string) ([]domain.SystemQuality, error)
}

// MemoRepository is the minimal interface the router requires from a memo store.
type MemoRepository interface {
	Put(ctx context.Context, m *domain.Memo) error
	Get(ctx context.Context, memoID string) (*domain.Memo, error)
	GetBySystemQuality(ctx context.Context, systemQualityID string) (*domain.Memo, error)
	Update(ctx context.Context, memoID string, updates map[string]interface{}) error
	Delete(ctx context.Context, memoID string) error
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Sign(userID, email string, authorities []string) (string, error)
	Verify(tokenStr string) (*jwtinfra.Claims, error)
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	UserRepo      UserRepository
	AuthorityRepo AuthorityRepository
	TeamRepo      TeamRepository
	SystemRepo    SystemRepository
	QualityRepo   QualityRepository
	MemoRepo      MemoRepository
	JWTProvider   TokenIssuer
	Publisher     sns.Publisher
}
