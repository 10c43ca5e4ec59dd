package dynamo

import (
	"context"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// SystemRepo provides typed DynamoDB operations for the systems table.
type SystemRepo struct {
	client    API
	tableName string
}

func NewSystemRepo(client API, tableName string) *SystemRepo {
	return &SystemRepo{client: client, tableName: tableName}
}

func (r *SystemRepo) Put(ctx context.Context, s *domain.System) error {
	return putItem(ctx, r.client, r.tableName, s, "system")
}

func (r *SystemRepo) Get(ctx context.Context, systemID string) (*domain.System, error) {
	return getItem[domain.System](ctx, r.client, r.tableName, strKey(fieldSystemID, systemID), "system")
}

// ListByTeam returns systems where team_id = teamID via team_id-index.
func (r *SystemRepo) ListByTeam(ctx context.Context, teamID string) ([]domain.System, error) {
	items, err := queryAll(ctx, r.client, indexEq(r.tableName, indexTeamID, fieldTeamID, teamID))
	if err != nil {
		return nil, err
	}
	systems := []domain.System{}
	if err := attributevalue.UnmarshalListOfMaps(items, &systems); err != nil {
		return nil, err
	}
	return systems, nil
}
