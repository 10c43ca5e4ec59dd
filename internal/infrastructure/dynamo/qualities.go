package dynamo

import (
	"context"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

// QualityRepo provides typed DynamoDB operations for the system_qualities table.
type QualityRepo struct {
	client    API
	tableName string
}

func NewQualityRepo(client API, tableName string) *QualityRepo {
	return &QualityRepo{client: client, tableName: tableName}
}

func (r *QualityRepo) Put(ctx context.Context, q *domain.SystemQuality) error {
	return putItem(ctx, r.client, r.tableName, q, "system quality")
}

func (r *QualityRepo) Get(ctx context.Context, id string) (*domain.SystemQuality, error) {
	return getItem[domain.SystemQuality](ctx, r.client, r.tableName, strKey(fieldSystemQualityID, id), "system quality")
}

// ListBySystem returns measurements where system_id = systemID via system_id-index.
func (r *QualityRepo) ListBySystem(ctx context.Context, systemID string) ([]domain.SystemQuality, error) {
	items, err := queryAll(ctx, r.client, indexEq(r.tableName, indexSystemID, fieldSystemID, systemID))
	if err != nil {
		return nil, err
	}
	qs := []domain.SystemQuality{}
	if err := attributevalue.UnmarshalListOfMaps(items, &qs); err != nil {
		return nil, err
	}
	return qs, nil
}
