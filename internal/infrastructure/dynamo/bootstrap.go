package dynamo

import (
	"context"
	"errors"
	"time"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/config"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// tableWaitTimeout bounds how long Bootstrap waits for a new table to become ACTIVE.
const tableWaitTimeout = 30 * time.Second

// Bootstrap creates all DynamoDB tables and GSIs if they don't already exist,
// then seeds the built-in authorities. Safe to call on every startup.
func Bootstrap(ctx context.Context, client *dynamodb.Client, tables config.DynamoTables, log *zap.Logger) {
	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Users),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			strAttr("user_id"), strAttr(fieldEmail), strAttr(fieldNickname),
		},
		KeySchema: hashKey("user_id"),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			gsi(indexEmail, fieldEmail),
			gsi(indexNickname, fieldNickname),
		},
	})

	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:            aws.String(tables.Authorities),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{strAttr(fieldAuthorityName)},
		KeySchema:            hashKey(fieldAuthorityName),
	})

	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:            aws.String(tables.Teams),
		BillingMode:          types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{strAttr(fieldTeamID)},
		KeySchema:            hashKey(fieldTeamID),
	})

	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Systems),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			strAttr(fieldSystemID), strAttr(fieldTeamID),
		},
		KeySchema:              hashKey(fieldSystemID),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(indexTeamID, fieldTeamID)},
	})

	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.SystemQualities),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			strAttr(fieldSystemQualityID), strAttr(fieldSystemID),
		},
		KeySchema:              hashKey(fieldSystemQualityID),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(indexSystemID, fieldSystemID)},
	})

	createTable(ctx, client, log, &dynamodb.CreateTableInput{
		TableName:   aws.String(tables.Memos),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			strAttr("memo_id"), strAttr(fieldSystemQualityID),
		},
		KeySchema:              hashKey("memo_id"),
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{gsi(indexSystemQuality, fieldSystemQualityID)},
	})

	authorities := NewAuthorityRepo(client, tables.Authorities)
	for _, name := range []string{domain.RoleUser, domain.RoleAdmin} {
		if err := authorities.Put(ctx, &domain.Authority{Name: name}); err != nil {
			log.Warn("could not seed authority", zap.String("authority", name), zap.Error(err))
		}
	}
}

func strAttr(name string) types.AttributeDefinition {
	return types.AttributeDefinition{AttributeName: aws.String(name), AttributeType: types.ScalarAttributeTypeS}
}

func hashKey(name string) []types.KeySchemaElement {
	return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
}

// gsi builds a hash-only GSI descriptor projecting all attributes.
func gsi(indexName, hashAttr string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(indexName),
		KeySchema:  hashKey(hashAttr),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}

func createTable(ctx context.Context, client *dynamodb.Client, log *zap.Logger, input *dynamodb.CreateTableInput) {
	_, err := client.CreateTable(ctx, input)
	if err != nil {
		// ResourceInUseException: table already exists.
		var riue *types.ResourceInUseException
		if !errors.As(err, &riue) {
			log.Warn("could not create table", zap.String("table", *input.TableName), zap.Error(err))
		}
		return
	}
	if err := dynamodb.NewTableExistsWaiter(client).Wait(ctx, &dynamodb.DescribeTableInput{TableName: input.TableName}, tableWaitTimeout); err != nil {
		log.Warn("table not active yet", zap.String("table", *input.TableName), zap.Error(err))
		return
	}
	log.Info("created table", zap.String("table", *input.TableName))
}
