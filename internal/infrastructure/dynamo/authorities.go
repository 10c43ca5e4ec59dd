package dynamo

import (
	"context"
	"fmt"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxBatchAttempts bounds retries of UnprocessedKeys in BatchGet.
const maxBatchAttempts = 3

// AuthorityRepo provides typed DynamoDB operations for the authorities table.
type AuthorityRepo struct {
	client    API
	tableName string
}

func NewAuthorityRepo(client API, tableName string) *AuthorityRepo {
	return &AuthorityRepo{client: client, tableName: tableName}
}

func (r *AuthorityRepo) Put(ctx context.Context, a *domain.Authority) error {
	return putItem(ctx, r.client, r.tableName, a, "authority")
}

func (r *AuthorityRepo) Get(ctx context.Context, name string) (*domain.Authority, error) {
	return getItem[domain.Authority](ctx, r.client, r.tableName, strKey(fieldAuthorityName, name), "authority")
}

// BatchGet loads the named authorities. Names with no document are skipped and
// repeated names are requested once, since BatchGetItem rejects duplicate keys.
func (r *AuthorityRepo) BatchGet(ctx context.Context, names []string) ([]domain.Authority, error) {
	seen := make(map[string]struct{}, len(names))
	keys := make([]map[string]types.AttributeValue, 0, len(names))
	for _, n := range names {
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		keys = append(keys, strKey(fieldAuthorityName, n))
	}
	if len(keys) == 0 {
		return []domain.Authority{}, nil
	}
	pending := map[string]types.KeysAndAttributes{r.tableName: {Keys: keys}}

	var out []domain.Authority
	for attempt := 0; attempt < maxBatchAttempts && len(pending) > 0; attempt++ {
		res, err := r.client.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
		if err != nil {
			return nil, err
		}
		var page []domain.Authority
		if err := attributevalue.UnmarshalListOfMaps(res.Responses[r.tableName], &page); err != nil {
			return nil, err
		}
		out = append(out, page...)
		pending = res.UnprocessedKeys
	}
	if len(pending) > 0 {
		return nil, fmt.Errorf("batch get authorities: unprocessed keys after %d attempts", maxBatchAttempts)
	}
	return out, nil
}
