package dispatch

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/shared"
)

type Pusher interface {
	// Deliver runs the payload pipeline and hands the result to the transport. It never retries.
	Deliver(ctx context.Context, record *notification.Record, recipientID int64) *notification.PushResult
}

type pusherImpl struct {
	builder   PushBuilder
	transport shared.PushTransport
	logger    *slog.Logger
}

func NewPusher(builder PushBuilder, transport shared.PushTransport, logger *slog.Logger) Pusher {
	return &pusherImpl{
		builder:   builder,
		transport: transport,
		logger:    logger,
	}
}

// Deliver returns nil when nothing was handed to the transport.
func (p *pusherImpl) Deliver(ctx context.Context, record *notification.Record, recipientID int64) *notification.PushResult {
	delivery, err := p.builder.Build(ctx, record, recipientID)
	if err != nil {
		if errs.Is(err, ErrSkipped) {
			reason := skipReason(err)
			metrics.PushSkipped.WithLabelValues(reason).Inc()
			p.logger.Debug("push skipped",
				slog.String("reason", reason),
				slog.Int64("recipient_id", recipientID),
				slog.Int64("notification_id", record.ID))
			return nil
		}
		p.logger.Error("failed to build push payload",
			slog.Int64("recipient_id", recipientID),
			slog.Int64("notification_id", record.ID),
			slog.Any("error", err),
			slog.Any("stack", errs.ExtractStackLines(err, 10)))
		return nil
	}

	result := p.transport.SendToTenant(ctx, delivery.TenantID, delivery.Message)

	outcome := "success"
	if !result.Success {
		outcome = "failure"
	}
	metrics.PushDelivered.WithLabelValues(outcome).Inc()
	p.logger.Info("push handed to transport",
		slog.Int64("recipient_id", delivery.RecipientID),
		slog.Int64("tenant_id", delivery.TenantID),
		slog.Int64("notification_id", record.ID),
		slog.Bool("success", result.Success),
		slog.Int("sent_to_devices", result.SentToDevices),
		slog.String("error", result.Error))

	return &result
}
