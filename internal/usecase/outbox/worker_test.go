//go:build unit

package outbox_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/infra/cache"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/usecase/dispatch"
	"ticketing-notifier/internal/usecase/outbox"
	"ticketing-notifier/internal/usecase/shared"
	sharedmock "ticketing-notifier/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

type dispatcherFunc func(ctx context.Context, ev notification.Event) error

func (f dispatcherFunc) Handle(ctx context.Context, ev notification.Event) error {
	return f(ctx, ev)
}

type workerFixture struct {
	queue  *sharedmock.MockOutboxQueue
	store  *cache.LocalStore
	worker *outbox.Worker
	events []notification.Event
	result error
}

func newWorkerFixture(t *testing.T) *workerFixture {
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(now)
	f := &workerFixture{
		queue: sharedmock.NewMockOutboxQueue(ctrl),
		store: cache.NewLocalStore(clk, time.Minute),
	}
	router := dispatcherFunc(func(_ context.Context, ev notification.Event) error {
		f.events = append(f.events, ev)
		return f.result
	})
	cfg := config.NewTestConfig().Dispatch
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.worker = outbox.NewWorker(f.queue, router, f.store, nil, clk, cfg, logger)
	return f
}

func ticketCreatedJob(t *testing.T, attempts int32) shared.OutboxJob {
	t.Helper()
	payload, err := json.Marshal(map[string]any{"ticket_id": 12})
	require.NoError(t, err)
	return shared.OutboxJob{
		ID:       uuid.New(),
		Kind:     notification.KindTicketCreated.String(),
		Payload:  payload,
		Attempts: attempts,
	}
}

func TestWorker_ProcessBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches and completes", func(t *testing.T) {
		f := newWorkerFixture(t)
		job := ticketCreatedJob(t, 0)
		f.queue.EXPECT().Claim(gomock.Any(), int32(10), now).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Complete(gomock.Any(), job.ID).Return(nil)

		n, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		require.Len(t, f.events, 1)
		assert.Equal(t, notification.TicketCreated{TicketID: 12}, f.events[0])
		done, err := f.store.Has(ctx, "outbox_event:"+job.ID.String()+":done")
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("a job already dispatched is completed without fanning out again", func(t *testing.T) {
		f := newWorkerFixture(t)
		job := ticketCreatedJob(t, 1)
		require.NoError(t, f.store.Set(ctx, "outbox_event:"+job.ID.String()+":done", "1", time.Hour))
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Complete(gomock.Any(), job.ID).Return(nil)

		_, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Empty(t, f.events)
	})

	t.Run("transient failure is retried with backoff", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.result = errors.New("connection reset")
		job := ticketCreatedJob(t, 1)
		retryAt := now.Add(2 * time.Second)
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Fail(gomock.Any(), job.ID, "connection reset", &retryAt).Return(nil)

		_, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
	})

	t.Run("last attempt fails for good", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.result = errors.New("connection reset")
		job := ticketCreatedJob(t, 2)
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Fail(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		_, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
	})

	t.Run("missing relation is not retried", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.result = errs.Mark(errs.New("ticket not found"), dispatch.ErrMissingRelation)
		job := ticketCreatedJob(t, 0)
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Fail(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		_, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
	})

	t.Run("malformed payload is not retried or dispatched", func(t *testing.T) {
		f := newWorkerFixture(t)
		job := shared.OutboxJob{ID: uuid.New(), Kind: "ticket.archived", Payload: []byte(`{}`)}
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxJob{job}, nil)
		f.queue.EXPECT().Fail(gomock.Any(), job.ID, gomock.Any(), (*time.Time)(nil)).Return(nil)

		_, err := f.worker.ProcessBatch(ctx)

		require.NoError(t, err)
		assert.Empty(t, f.events)
	})

	t.Run("claim failure is returned", func(t *testing.T) {
		f := newWorkerFixture(t)
		f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pool closed"))

		n, err := f.worker.ProcessBatch(ctx)

		assert.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestBackoff(t *testing.T) {
	cases := []struct {
		attempts int32
		want     time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{3, 8 * time.Second},
		{8, 256 * time.Second},
		{9, 5 * time.Minute},
		{40, 5 * time.Minute},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, outbox.Backoff(tc.attempts), "attempts=%d", tc.attempts)
	}
}

func TestWorker_StartStop(t *testing.T) {
	f := newWorkerFixture(t)
	f.queue.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	f.worker.Start(context.Background())
	time.Sleep(250 * time.Millisecond)

	done := make(chan struct{})
	go func() {
		f.worker.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}

	t.Run("second stop is a no-op", func(t *testing.T) {
		assert.NotPanics(t, f.worker.Stop)
	})
}
