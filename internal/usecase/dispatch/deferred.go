package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"ticketing-notifier/internal/pkg/errs"
)

type TaskFunc func(ctx context.Context) error

type task struct {
	name string
	fn   TaskFunc
}

// Deferred is a per-request list of tasks run after the response has been written.
// Tasks run sequentially, in the order they were added, on the goroutine that drains them.
// Nothing is persisted: tasks still queued when the process dies are lost.
type Deferred struct {
	mu     sync.Mutex
	tasks  []task
	logger *slog.Logger
}

func NewDeferred(logger *slog.Logger) *Deferred {
	return &Deferred{logger: logger}
}

type deferredKey struct{}

func WithDeferred(ctx context.Context, d *Deferred) context.Context {
	return context.WithValue(ctx, deferredKey{}, d)
}

func DeferredFrom(ctx context.Context) (*Deferred, bool) {
	d, ok := ctx.Value(deferredKey{}).(*Deferred)
	return d, ok && d != nil
}

// Defer queues fn on the request's task list. Without one (background workers) fn runs immediately.
func Defer(ctx context.Context, logger *slog.Logger, name string, fn TaskFunc) {
	if d, ok := DeferredFrom(ctx); ok {
		d.Add(name, fn)
		return
	}
	runTask(ctx, logger, task{name: name, fn: fn})
}

func (d *Deferred) Add(name string, fn TaskFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, task{name: name, fn: fn})
}

func (d *Deferred) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tasks)
}

// Drain runs queued tasks until the list is empty, including tasks added while draining.
// It returns the number of tasks that ran.
func (d *Deferred) Drain(ctx context.Context) int {
	ran := 0
	for {
		t, ok := d.pop()
		if !ok {
			return ran
		}
		runTask(ctx, d.logger, t)
		ran++
	}
}

func (d *Deferred) pop() (task, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.tasks) == 0 {
		return task{}, false
	}
	t := d.tasks[0]
	d.tasks = d.tasks[1:]
	return t, true
}

func runTask(ctx context.Context, logger *slog.Logger, t task) {
	defer func() {
		if r := recover(); r != nil {
			err := errs.FromPanic(r)
			logger.Error("deferred task panicked",
				slog.String("task", t.name),
				slog.Any("error", err),
				slog.Any("stack", errs.ExtractStackLines(err, 10)))
		}
	}()

	if err := t.fn(ctx); err != nil {
		logHandlerError(logger, t.name, err)
	}
}
