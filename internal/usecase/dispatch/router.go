package dispatch

import (
	"context"
	"log/slog"
	"sort"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/pkg/metrics"
)

type HandlerFunc func(ctx context.Context, ev notification.Event) error

// Router maps event kinds to handlers. Handler failures are logged and never reach the caller.
type Router struct {
	handlers map[notification.EventKind]HandlerFunc
	logger   *slog.Logger
}

func NewRouter(h *Handlers, logger *slog.Logger) *Router {
	r := &Router{
		handlers: make(map[notification.EventKind]HandlerFunc),
		logger:   logger,
	}
	r.Register(notification.KindTicketCreated, h.OnTicketCreated)
	r.Register(notification.KindTicketAssigned, h.OnTicketAssigned)
	r.Register(notification.KindTicketStatusChanged, h.OnTicketStatusChanged)
	r.Register(notification.KindTicketCommentAdded, h.OnTicketCommentAdded)
	r.Register(notification.KindAppointmentCreated, h.OnAppointmentCreated)
	r.Register(notification.KindAppointmentRescheduled, h.OnAppointmentRescheduled)
	r.Register(notification.KindNotificationBroadcastRequested, h.OnNotificationBroadcastRequested)
	return r
}

func (r *Router) Register(kind notification.EventKind, fn HandlerFunc) {
	r.handlers[kind] = fn
}

func (r *Router) Kinds() []notification.EventKind {
	kinds := make([]notification.EventKind, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Dispatch only returns an error for a kind with no registered handler.
func (r *Router) Dispatch(ctx context.Context, ev notification.Event) error {
	err := r.Handle(ctx, ev)
	if errs.Is(err, errs.ErrUnknownEvent) {
		return err
	}
	return nil
}

// Handle runs the handler for ev and returns its error, with panics converted to errors.
// Failures are logged here, so callers only decide whether to retry.
func (r *Router) Handle(ctx context.Context, ev notification.Event) error {
	fn, ok := r.handlers[ev.Kind()]
	if !ok {
		metrics.EventsDispatched.WithLabelValues(ev.Kind().String(), "unknown").Inc()
		return errs.Mark(errs.Newf("no handler for %q", ev.Kind()), errs.ErrUnknownEvent)
	}

	err := r.run(ctx, fn, ev)
	outcome := "ok"
	switch {
	case err == nil:
	case errs.Is(err, ErrMissingRelation):
		outcome = "aborted"
	default:
		outcome = "error"
	}
	metrics.EventsDispatched.WithLabelValues(ev.Kind().String(), outcome).Inc()
	if err != nil {
		logHandlerError(r.logger, ev.Kind().String(), err)
	}
	return err
}

func (r *Router) run(ctx context.Context, fn HandlerFunc, ev notification.Event) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = errs.Wrapf(errs.FromPanic(rec), "handler for %s panicked", ev.Kind())
		}
	}()
	return fn(ctx, ev)
}

// logHandlerError logs missing relationships as warnings and anything else as errors with a stack.
func logHandlerError(logger *slog.Logger, source string, err error, attrs ...any) {
	args := append([]any{slog.String("source", source), slog.Any("error", err)}, attrs...)
	if errs.Is(err, ErrMissingRelation) {
		logger.Warn("notification handler aborted", args...)
		return
	}
	args = append(args, slog.Any("stack", errs.ExtractStackLines(err, 10)))
	logger.Error("notification handler failed", args...)
}
