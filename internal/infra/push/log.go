package push

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/domain/notification"
)

// LogTransport records pushes in the log instead of sending them. Used in development and tests.
type LogTransport struct {
	logger *slog.Logger
}

func NewLogTransport(logger *slog.Logger) *LogTransport {
	return &LogTransport{logger: logger}
}

func (t *LogTransport) SendToTenant(_ context.Context, tenantID int64, msg notification.PushMessage) notification.PushResult {
	t.logger.Info("push (log transport)",
		slog.Int64("tenant_id", tenantID),
		slog.String("title", msg.Title),
		slog.String("body", msg.Body),
		slog.Any("data", msg.Data.Map()))
	return notification.PushResult{Success: true}
}

func (t *LogTransport) SendSingle(_ context.Context, token string, tokenType notification.TokenType, title, body string, data map[string]any) notification.PushResult {
	if !tokenType.IsValid() {
		return notification.PushResult{Error: "unknown token type " + string(tokenType)}
	}
	t.logger.Info("single push (log transport)",
		slog.String("token_type", string(tokenType)),
		slog.Int("token_len", len(token)),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data))
	return notification.PushResult{Success: true, SentToDevices: 1}
}
