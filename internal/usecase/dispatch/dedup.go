package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/shared"
)

const defaultDedupTTL = 30 * time.Second

type DedupGate interface {
	// Allow reports whether a push for (recipient, notification) may go out now.
	Allow(ctx context.Context, recipientID, notificationID int64) bool
}

type dedupGateImpl struct {
	store  shared.Store
	ttl    time.Duration
	logger *slog.Logger
}

func NewDedupGate(store shared.Store, cfg config.DispatchConfig, logger *slog.Logger) DedupGate {
	ttl := cfg.DedupTTL
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &dedupGateImpl{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

func DedupKey(recipientID, notificationID int64) string {
	return fmt.Sprintf("notification_push:%d:%d", recipientID, notificationID)
}

// Allow fails open: a store error lets the delivery through.
func (g *dedupGateImpl) Allow(ctx context.Context, recipientID, notificationID int64) bool {
	key := DedupKey(recipientID, notificationID)

	first, err := g.store.SetNX(ctx, key, "1", g.ttl)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("dedup_gate").Inc()
		g.logger.Error("dedup store unavailable, allowing delivery",
			slog.String("key", key),
			slog.Int64("recipient_id", recipientID),
			slog.Int64("notification_id", notificationID),
			slog.Any("error", err))
		return true
	}

	return first
}
