//go:build unit

package push_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/infra/push"
	"ticketing-notifier/internal/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.inputs = append(f.inputs, in)
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-1")}, nil
}

func newSNSTransport(client *fakeSNS) *push.SNSTransport {
	cfg := config.PushConfig{TopicARNPrefix: "arn:aws:sns:us-east-1:123456789012:"}
	return push.NewSNSTransport(client, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSNSTransport_SendToTenant(t *testing.T) {
	ctx := context.Background()
	msg := notification.PushMessage{
		Title: "🔄 Ticket Status Changed",
		Body:  "Ticket TCK-12 is now Resolved",
		Data:  notification.PushData{Type: "ticket", Screen: "/tickets", NotificationID: 31},
	}

	t.Run("publishes to the tenant topic", func(t *testing.T) {
		client := &fakeSNS{}
		res := newSNSTransport(client).SendToTenant(ctx, 7, msg)

		assert.Equal(t, notification.PushResult{Success: true, SentToDevices: 1}, res)
		require.Len(t, client.inputs, 1)
		in := client.inputs[0]
		assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:tenant-7", aws.ToString(in.TopicArn))
		assert.Equal(t, "json", aws.ToString(in.MessageStructure))
		assert.Equal(t, "ticket", aws.ToString(in.MessageAttributes["notification_type"].StringValue))

		var doc map[string]string
		require.NoError(t, json.Unmarshal([]byte(aws.ToString(in.Message)), &doc))
		assert.Equal(t, msg.Body, doc["default"])
		var gcm struct {
			Notification map[string]string `json:"notification"`
			Data         map[string]any    `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(doc["GCM"]), &gcm))
		assert.Equal(t, msg.Title, gcm.Notification["title"])
		assert.Equal(t, "/tickets", gcm.Data["screen"])
	})

	t.Run("failure is reported in the result", func(t *testing.T) {
		client := &fakeSNS{err: errors.New("AuthorizationError")}
		res := newSNSTransport(client).SendToTenant(ctx, 7, msg)

		assert.False(t, res.Success)
		assert.Contains(t, res.Error, "AuthorizationError")
	})
}

func TestSNSTransport_SendSingle(t *testing.T) {
	ctx := context.Background()

	t.Run("fcm endpoint", func(t *testing.T) {
		client := &fakeSNS{}
		endpoint := "arn:aws:sns:us-east-1:123456789012:endpoint/GCM/app/abc"
		res := newSNSTransport(client).SendSingle(ctx, endpoint, notification.TokenTypeFCM, "t", "b", map[string]any{"k": "v"})

		assert.True(t, res.Success)
		require.Len(t, client.inputs, 1)
		assert.Equal(t, endpoint, aws.ToString(client.inputs[0].TargetArn))
	})

	t.Run("other token types are rejected without calling sns", func(t *testing.T) {
		client := &fakeSNS{}
		res := newSNSTransport(client).SendSingle(ctx, "ExponentPushToken[x]", notification.TokenTypeExpo, "t", "b", nil)

		assert.False(t, res.Success)
		assert.Empty(t, client.inputs)
	})
}
