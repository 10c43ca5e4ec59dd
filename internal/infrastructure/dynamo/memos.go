package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoRepo provides typed DynamoDB operations for the memos table.
type MemoRepo struct {
	client    API
	tableName string
}

func NewMemoRepo(client API, tableName string) *MemoRepo {
	return &MemoRepo{client: client, tableName: tableName}
}

// qualityGuardKey is the key of the guard item that reserves a system quality
// for one memo. Guard items carry no system_quality_id attribute, so they stay
// out of system_quality_id-index.
func qualityGuardKey(systemQualityID string) map[string]types.AttributeValue {
	return strKey("memo_id", "quality#"+systemQualityID)
}

// Put stores a new memo together with its system quality guard in one
// transaction. A system quality that already has a memo yields domain.ErrConflict.
func (r *MemoRepo) Put(ctx context.Context, m *domain.Memo) error {
	item, err := attributevalue.MarshalMap(m)
	if err != nil {
		return fmt.Errorf("marshal memo: %w", err)
	}
	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tableName),
				Item:                qualityGuardKey(m.SystemQualityID),
				ConditionExpression: aws.String("attribute_not_exists(memo_id)"),
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item:      item,
			}},
		},
	})
	if conditionFailed(err) {
		return fmt.Errorf("memo for system quality %s: %w", m.SystemQualityID, domain.ErrConflict)
	}
	return err
}

func (r *MemoRepo) Get(ctx context.Context, memoID string) (*domain.Memo, error) {
	return getItem[domain.Memo](ctx, r.client, r.tableName, strKey("memo_id", memoID), "memo")
}

// GetBySystemQuality returns the memo where system_quality_id = id via
// system_quality_id-index.
func (r *MemoRepo) GetBySystemQuality(ctx context.Context, id string) (*domain.Memo, error) {
	items, err := queryAll(ctx, r.client, indexEq(r.tableName, indexSystemQuality, fieldSystemQualityID, id))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("memo for system quality %s: %w", id, domain.ErrNotFound)
	}
	var m domain.Memo
	if err := attributevalue.UnmarshalMap(items[0], &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MemoRepo) Update(ctx context.Context, memoID string, updates map[string]interface{}) error {
	return updateItem(ctx, r.client, r.tableName, strKey("memo_id", memoID), updates)
}

// Delete removes the memo and releases its system quality guard. A memo that
// does not exist yields domain.ErrNotFound.
func (r *MemoRepo) Delete(ctx context.Context, memoID string) error {
	m, err := r.Get(ctx, memoID)
	if err != nil {
		return err
	}
	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Delete: &types.Delete{
				TableName:           aws.String(r.tableName),
				Key:                 strKey("memo_id", memoID),
				ConditionExpression: aws.String("attribute_exists(memo_id)"),
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tableName),
				Key:       qualityGuardKey(m.SystemQualityID),
			}},
		},
	})
	if conditionFailed(err) {
		return fmt.Errorf("memo %s: %w", memoID, domain.ErrNotFound)
	}
	return err
}

// conditionFailed reports whether err is a failed condition check, either on a
// single-item write or on any item of a cancelled transaction.
func conditionFailed(err error) bool {
	if err == nil {
		return false
	}
	var ccf *types.ConditionalCheckFailedException
	if errors.As(err, &ccf) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
