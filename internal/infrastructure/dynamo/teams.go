package dynamo

import (
	"context"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// TeamRepo provides typed DynamoDB operations for the teams table.
type TeamRepo struct {
	client    API
	tableName string
}

func NewTeamRepo(client API, tableName string) *TeamRepo {
	return &TeamRepo{client: client, tableName: tableName}
}

func (r *TeamRepo) Put(ctx context.Context, t *domain.Team) error {
	return putItem(ctx, r.client, r.tableName, t, "team")
}

func (r *TeamRepo) Get(ctx context.Context, teamID string) (*domain.Team, error) {
	return getItem[domain.Team](ctx, r.client, r.tableName, strKey(fieldTeamID, teamID), "team")
}

// Scan returns every team. The table holds one document per organisational team.
func (r *TeamRepo) Scan(ctx context.Context) ([]domain.Team, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	var teams []domain.Team
	for {
		out, err := r.client.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var page []domain.Team
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		teams = append(teams, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return teams, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
