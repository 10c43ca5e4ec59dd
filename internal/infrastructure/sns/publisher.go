package sns

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/config"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// Event types published for memo lifecycle changes.
const (
	EventMemoCreated = "memo.created"
	EventMemoUpdated = "memo.updated"
	EventMemoDeleted = "memo.deleted"
)

// Publisher emits domain events. Implementations never fail the caller.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

// API is the subset of *sns.Client the topic publisher uses.
type API interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type topicPublisher struct {
	client   API
	topicARN string
	log      *zap.Logger
}

// NewPublisher returns a Publisher for cfg.SNSTopicARN, or a no-op
// Publisher when no topic is configured.
func NewPublisher(ctx context.Context, cfg *config.Config, log *zap.Logger) (Publisher, error) {
	if cfg.SNSTopicARN == "" {
		return NopPublisher{}, nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SNSRegion))
	if err != nil {
		return nil, err
	}
	var opts []func(*sns.Options)
	if cfg.AWSEndpointURL != "" {
		opts = append(opts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}
	return NewTopicPublisher(sns.NewFromConfig(awsCfg, opts...), cfg.SNSTopicARN, log), nil
}

func NewTopicPublisher(client API, topicARN string, log *zap.Logger) Publisher {
	return &topicPublisher{client: client, topicARN: topicARN, log: log}
}

func (p *topicPublisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	if err := p.publish(ctx, eventType, payload); err != nil {
		p.log.Warn("publish event failed", zap.String("event", eventType), zap.Error(err))
	}
}

func (p *topicPublisher) publish(ctx context.Context, eventType string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"eventType": {DataType: aws.String("String"), StringValue: aws.String(eventType)},
		},
	})
	return err
}

// NopPublisher discards every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) {}
