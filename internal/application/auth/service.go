package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

type LoginResult struct {
	AccessToken string       `json:"accessToken"`
	User        *domain.User `json:"user"`
}

type Service interface {
	Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error)
	Login(ctx context.Context, in domain.LoginInput) (*LoginResult, error)
}

type userStore interface {
	ExistsByEmailAndStatus(ctx context.Context, email, status string) (bool, error)
	ExistsByNicknameAndStatus(ctx context.Context, nickname, status string) (bool, error)
	FindOneWithAuthoritiesByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}

type authorityStore interface {
	Get(ctx context.Context, name string) (*domain.Authority, error)
}

type teamStore interface {
	Get(ctx context.Context, teamID string) (*domain.Team, error)
}

type jwtSigner interface {
	Sign(userID, email string, authorities []string) (string, error)
}

type service struct {
	users       userStore
	authorities authorityStore
	teams       teamStore
	jwtProvider jwtSigner
}

type ServiceDeps struct {
	UserRepo      userStore
	AuthorityRepo authorityStore
	TeamRepo      teamStore
	JWTProvider   jwtSigner
}

func NewService(deps ServiceDeps) Service {
	return &service{
		users:       deps.UserRepo,
		authorities: deps.AuthorityRepo,
		teams:       deps.TeamRepo,
		jwtProvider: deps.JWTProvider,
	}
}

func (s *service) Signup(ctx context.Context, in domain.SignupInput) (*domain.User, error) {
	taken, err := s.users.ExistsByEmailAndStatus(ctx, in.Email, domain.UserStatusActive)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Duplicated(domain.DuplicateEmail)
	}
	taken, err = s.users.ExistsByNicknameAndStatus(ctx, in.Nickname, domain.UserStatusActive)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Duplicated(domain.DuplicateNickname)
	}

	authority, err := s.authorities.Get(ctx, domain.RoleUser)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingAuthority)
		}
		return nil, err
	}
	for _, teamID := range in.TeamIDs {
		if _, err := s.teams.Get(ctx, teamID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NotFound(domain.MissingTeam)
			}
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	u := &domain.User{
		UserID:       id.New(),
		Email:        in.Email,
		Nickname:     in.Nickname,
		PasswordHash: string(hash),
		TeamIDs:      in.TeamIDs,
		AuthorityIDs: []string{authority.Name},
		Authorities:  []domain.Authority{*authority},
		Status:       domain.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, in domain.LoginInput) (*LoginResult, error) {
	u, err := s.users.FindOneWithAuthoritiesByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(domain.MissingUser)
		}
		return nil, err
	}
	if !u.IsActive() {
		return nil, domain.Unauthorized("withdrawn")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return nil, &domain.CredentialMismatch{}
	}

	names := make([]string, len(u.Authorities))
	for i, a := range u.Authorities {
		names[i] = a.Name
	}
	token, err := s.jwtProvider.Sign(u.UserID, u.Email, names)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &LoginResult{AccessToken: token, User: u}, nil
}
