package dynamo

import (
	"context"
	"fmt"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// UserRepo provides typed DynamoDB operations for the users table.
type UserRepo struct {
	client      API
	tableName   string
	authorities *AuthorityRepo
}

func NewUserRepo(client API, tableName string, authorities *AuthorityRepo) *UserRepo {
	return &UserRepo{client: client, tableName: tableName, authorities: authorities}
}

func (r *UserRepo) Put(ctx context.Context, u *domain.User) error {
	return putItem(ctx, r.client, r.tableName, u, "user")
}

func (r *UserRepo) Get(ctx context.Context, userID string) (*domain.User, error) {
	return getItem[domain.User](ctx, r.client, r.tableName, strKey("user_id", userID), "user")
}

func (r *UserRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("user_id", userID), updates)
}

// FindByEmailAndStatus returns the first user where email = email AND
// status = status, using email-index with a status filter.
func (r *UserRepo) FindByEmailAndStatus(ctx context.Context, email, status string) (*domain.User, error) {
	items, err := queryAll(ctx, r.client, withFilterEq(indexEq(r.tableName, indexEmail, fieldEmail, email), fieldStatus, status))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("user %s with status %s: %w", email, status, domain.ErrNotFound)
	}
	var u domain.User
	if err := attributevalue.UnmarshalMap(items[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ExistsByEmailAndStatus reports whether any user has email = email AND status = status.
func (r *UserRepo) ExistsByEmailAndStatus(ctx context.Context, email, status string) (bool, error) {
	n, err := countAll(ctx, r.client, withFilterEq(indexEq(r.tableName, indexEmail, fieldEmail, email), fieldStatus, status))
	return n > 0, err
}

// ExistsByNicknameAndStatus reports whether any user has nickname = nickname AND status = status.
func (r *UserRepo) ExistsByNicknameAndStatus(ctx context.Context, nickname, status string) (bool, error) {
	n, err := countAll(ctx, r.client, withFilterEq(indexEq(r.tableName, indexNickname, fieldNickname, nickname), fieldStatus, status))
	return n > 0, err
}

// FindOneWithAuthoritiesByEmail returns the user with email = email, with
// Authorities resolved from the authorities table. A withdrawn email can be
// registered again, so an ACTIVE document wins over any other. Otherwise the
// first match is returned in whatever status it has.
func (r *UserRepo) FindOneWithAuthoritiesByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := indexEq(r.tableName, indexEmail, fieldEmail, email)
	items, err := queryAll(ctx, r.client, q)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	var users []domain.User
	if err := attributevalue.UnmarshalListOfMaps(items, &users); err != nil {
		return nil, err
	}
	u := users[0]
	for _, candidate := range users {
		if candidate.IsActive() {
			u = candidate
			break
		}
	}
	if len(u.AuthorityIDs) > 0 {
		auths, err := r.authorities.BatchGet(ctx, u.AuthorityIDs)
		if err != nil {
			return nil, fmt.Errorf("load authorities: %w", err)
		}
		u.Authorities = auths
	}
	return &u, nil
}
