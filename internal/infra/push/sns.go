package push

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/config"
)

// SNSAPI is the subset of the SNS client the transport uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSTransport publishes tenant pushes to a per-tenant topic that the tenant's devices are subscribed to.
// Single-token sends go directly to an FCM platform endpoint ARN.
type SNSTransport struct {
	client      SNSAPI
	topicPrefix string
	logger      *slog.Logger
}

func NewSNSTransport(client SNSAPI, cfg config.PushConfig, logger *slog.Logger) *SNSTransport {
	return &SNSTransport{
		client:      client,
		topicPrefix: strings.TrimSuffix(cfg.TopicARNPrefix, ":"),
		logger:      logger,
	}
}

func NewSNSClient(ctx context.Context, cfg config.PushConfig) (*sns.Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}
	return sns.NewFromConfig(awsCfg), nil
}

func (t *SNSTransport) TopicARN(tenantID int64) string {
	return fmt.Sprintf("%s:tenant-%d", t.topicPrefix, tenantID)
}

func (t *SNSTransport) SendToTenant(ctx context.Context, tenantID int64, msg notification.PushMessage) notification.PushResult {
	message, err := platformMessage(msg.Title, msg.Body, msg.Data)
	if err != nil {
		return notification.PushResult{Error: err.Error()}
	}

	out, err := t.client.Publish(ctx, &sns.PublishInput{
		TopicArn:         aws.String(t.TopicARN(tenantID)),
		Message:          aws.String(message),
		MessageStructure: aws.String("json"),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"notification_type": {DataType: aws.String("String"), StringValue: aws.String(msg.Data.Type)},
		},
	})
	if err != nil {
		return notification.PushResult{Error: err.Error()}
	}

	t.logger.Debug("sns tenant push published",
		slog.Int64("tenant_id", tenantID),
		slog.String("message_id", aws.ToString(out.MessageId)))
	// A topic publish fans out inside SNS; per-device counts are not reported back.
	return notification.PushResult{Success: true, SentToDevices: 1}
}

func (t *SNSTransport) SendSingle(ctx context.Context, token string, tokenType notification.TokenType, title, body string, data map[string]any) notification.PushResult {
	if tokenType != notification.TokenTypeFCM {
		return notification.PushResult{Error: fmt.Sprintf("token type %q is not supported by the sns transport", tokenType)}
	}

	message, err := platformMessage(title, body, data)
	if err != nil {
		return notification.PushResult{Error: err.Error()}
	}

	if _, err := t.client.Publish(ctx, &sns.PublishInput{
		TargetArn:        aws.String(token),
		Message:          aws.String(message),
		MessageStructure: aws.String("json"),
	}); err != nil {
		return notification.PushResult{Error: err.Error()}
	}
	return notification.PushResult{Success: true, SentToDevices: 1}
}

// platformMessage builds the per-protocol JSON document SNS expects with MessageStructure=json.
func platformMessage(title, body string, data any) (string, error) {
	gcm, err := json.Marshal(map[string]any{
		"notification": map[string]string{"title": title, "body": body},
		"data":         data,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode push payload: %w", err)
	}
	doc, err := json.Marshal(map[string]string{
		"default": body,
		"GCM":     string(gcm),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode push payload: %w", err)
	}
	return string(doc), nil
}
