package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/dispatch"
	"ticketing-notifier/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	doneMarkerTTL = 24 * time.Hour
	maxBackoff    = 5 * time.Minute
)

// Dispatcher runs the handler for an event and reports its failure.
type Dispatcher interface {
	Handle(ctx context.Context, ev notification.Event) error
}

// ReminderTrigger runs the catch-up reminder scan when its guard allows it.
type ReminderTrigger interface {
	Trigger(ctx context.Context) bool
}

// Worker consumes the notification_jobs outbox and, optionally, drives the reminder scan on a ticker.
// Jobs may be delivered more than once, so everything it reaches must be idempotent.
type Worker struct {
	queue    shared.OutboxQueue
	router   Dispatcher
	store    shared.Store
	reminder ReminderTrigger
	clock    clock.Clock
	cfg      config.DispatchConfig
	logger   *slog.Logger

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewWorker(
	queue shared.OutboxQueue,
	router Dispatcher,
	store shared.Store,
	reminder ReminderTrigger,
	clock clock.Clock,
	cfg config.DispatchConfig,
	logger *slog.Logger,
) *Worker {
	return &Worker{
		queue:    queue,
		router:   router,
		store:    store,
		reminder: reminder,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
		stop:     make(chan struct{}),
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		w.loop(ctx, "outbox", w.cfg.OutboxInterval, func(ctx context.Context) {
			if _, err := w.ProcessBatch(ctx); err != nil {
				w.logger.Error("outbox batch failed", slog.Any("error", err))
			}
		})
	}()

	if w.cfg.ReminderLoopInterval > 0 && w.reminder != nil {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.loop(ctx, "reminders", w.cfg.ReminderLoopInterval, func(ctx context.Context) {
				w.reminder.Trigger(ctx)
			})
		}()
	}
}

// Stop ends the loops and waits for the running batch. It is safe to call more than once.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Worker) loop(ctx context.Context, name string, every time.Duration, fn func(context.Context)) {
	if every <= 0 {
		every = time.Second
	}
	w.logger.Info("starting worker loop", slog.String("loop", name), slog.Duration("interval", every))

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fn(ctx)
		case <-w.stop:
			w.logger.Info("stopping worker loop", slog.String("loop", name))
			return
		case <-ctx.Done():
			w.logger.Info("context cancelled, stopping worker loop", slog.String("loop", name))
			return
		}
	}
}

// ProcessBatch claims due jobs and dispatches each one. It returns how many jobs were claimed.
func (w *Worker) ProcessBatch(ctx context.Context) (int, error) {
	jobs, err := w.queue.Claim(ctx, w.cfg.OutboxBatchSize, w.clock.Now())
	if err != nil {
		return 0, errs.Wrap(err, "failed to claim outbox jobs")
	}

	for _, job := range jobs {
		w.process(ctx, job)
	}
	return len(jobs), nil
}

func doneKey(id uuid.UUID) string {
	return "outbox_event:" + id.String() + ":done"
}

func (w *Worker) process(ctx context.Context, job shared.OutboxJob) {
	logger := w.logger.With(slog.String("job_id", job.ID.String()), slog.String("kind", job.Kind))

	// A job whose status update was lost after a successful dispatch must not fan out again.
	if done, err := w.store.Has(ctx, doneKey(job.ID)); err == nil && done {
		w.complete(ctx, logger, job)
		return
	}

	ev, err := notification.DecodeEvent(notification.EventKind(job.Kind), job.Payload)
	if err != nil {
		// Malformed payloads never get better.
		w.fail(ctx, logger, job, err, false)
		return
	}

	if err := w.router.Handle(ctx, ev); err != nil {
		w.fail(ctx, logger, job, err, retryable(err))
		return
	}

	if err := w.store.Set(ctx, doneKey(job.ID), "1", doneMarkerTTL); err != nil {
		metrics.StoreErrors.WithLabelValues("outbox").Inc()
		logger.Warn("failed to record outbox completion marker", slog.Any("error", err))
	}
	w.complete(ctx, logger, job)
}

func (w *Worker) complete(ctx context.Context, logger *slog.Logger, job shared.OutboxJob) {
	if err := w.queue.Complete(ctx, job.ID); err != nil {
		logger.Error("failed to mark outbox job done", slog.Any("error", err))
		return
	}
	metrics.OutboxJobs.WithLabelValues("done").Inc()
}

func (w *Worker) fail(ctx context.Context, logger *slog.Logger, job shared.OutboxJob, cause error, retryable bool) {
	var retryAt *time.Time
	if retryable && job.Attempts+1 < w.cfg.OutboxMaxAttempts {
		at := w.clock.Now().Add(Backoff(job.Attempts))
		retryAt = &at
	}

	status := "failed"
	if retryAt != nil {
		status = "retry"
	}
	logger.Warn("outbox job not dispatched",
		slog.String("status", status),
		slog.Int("attempts", int(job.Attempts)+1),
		slog.Any("error", cause))

	if err := w.queue.Fail(ctx, job.ID, cause.Error(), retryAt); err != nil {
		logger.Error("failed to mark outbox job failed", slog.Any("error", err))
		return
	}
	metrics.OutboxJobs.WithLabelValues(status).Inc()
}

// Missing rows and unknown kinds fail the same way on every attempt.
func retryable(err error) bool {
	return !errs.Is(err, dispatch.ErrMissingRelation) &&
		!errs.Is(err, errs.ErrUnknownEvent) &&
		!errs.Is(err, errs.ErrInvalidEvent)
}

// Backoff doubles from one second per attempt, capped at five minutes.
func Backoff(attempts int32) time.Duration {
	d := time.Second
	for i := int32(0); i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
