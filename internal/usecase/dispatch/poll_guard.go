package dispatch

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/shared"
)

const (
	PollGuardKey        = "reminders:last_check"
	pollGuardClaimKey   = "reminders:last_check:claim:"
	defaultPollInterval = time.Minute
	defaultPollTTL      = 2 * time.Minute
)

type PollGuard interface {
	// ShouldRun reports whether the catch-up scan is due and, if so, records now as the last check.
	ShouldRun(ctx context.Context, now time.Time) bool
	// Trigger runs the catch-up scan when ShouldRun allows it.
	Trigger(ctx context.Context) bool
}

type pollGuardImpl struct {
	store     shared.Store
	scheduler ReminderScheduler
	clock     clock.Clock
	interval  time.Duration
	ttl       time.Duration
	logger    *slog.Logger
}

func NewPollGuard(
	store shared.Store,
	scheduler ReminderScheduler,
	clock clock.Clock,
	cfg config.DispatchConfig,
	logger *slog.Logger,
) PollGuard {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	ttl := cfg.PollTTL
	if ttl <= 0 {
		ttl = defaultPollTTL
	}
	return &pollGuardImpl{
		store:     store,
		scheduler: scheduler,
		clock:     clock,
		interval:  interval,
		ttl:       ttl,
		logger:    logger,
	}
}

// ShouldRun claims the observed last-check value with SetNX so concurrent callers
// that read the same value cannot both win. Store failures skip the scan.
func (g *pollGuardImpl) ShouldRun(ctx context.Context, now time.Time) bool {
	raw, found, err := g.store.Get(ctx, PollGuardKey)
	if err != nil {
		g.storeFailed("read", err)
		return false
	}

	observed := "none"
	if found {
		if last, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
			if now.Sub(time.Unix(last, 0)) < g.interval {
				return false
			}
			observed = raw
		}
	}

	claimed, err := g.store.SetNX(ctx, pollGuardClaimKey+observed, strconv.FormatInt(now.Unix(), 10), g.ttl)
	if err != nil {
		g.storeFailed("claim", err)
		return false
	}
	if !claimed {
		return false
	}

	if err := g.store.Set(ctx, PollGuardKey, strconv.FormatInt(now.Unix(), 10), g.ttl); err != nil {
		g.storeFailed("write", err)
	}
	return true
}

func (g *pollGuardImpl) Trigger(ctx context.Context) bool {
	if !g.ShouldRun(ctx, g.clock.Now()) {
		metrics.ReminderScans.WithLabelValues("skipped").Inc()
		return false
	}

	metrics.ReminderScans.WithLabelValues("ran").Inc()
	sent := g.scheduler.ScanUpcoming(ctx)
	g.logger.Debug("reminder catch-up scan finished", slog.Int("broadcasts", sent))
	return true
}

func (g *pollGuardImpl) storeFailed(op string, err error) {
	metrics.StoreErrors.WithLabelValues("poll_guard").Inc()
	g.logger.Error("poll guard store failure, skipping reminder scan",
		slog.String("op", op),
		slog.Any("error", err))
}
