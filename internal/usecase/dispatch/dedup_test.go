//go:build unit

package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketing-notifier/internal/infra/cache"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/usecase/dispatch"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestDedupGate(t *testing.T) {
	ctx := context.Background()

	t.Run("local store: duplicate inside the window, allowed again after it", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		gate := dispatch.NewDedupGate(cache.NewLocalStore(clk, time.Minute), testDispatchConfig(), discardLogger())

		assert.True(t, gate.Allow(ctx, 5, 77))

		clk.Add(10 * time.Second)
		assert.False(t, gate.Allow(ctx, 5, 77))

		clk.Add(31 * time.Second)
		assert.True(t, gate.Allow(ctx, 5, 77))
	})

	t.Run("keys are per recipient and notification", func(t *testing.T) {
		clk := clock.NewMockClock(baseTime)
		gate := dispatch.NewDedupGate(cache.NewLocalStore(clk, time.Minute), testDispatchConfig(), discardLogger())

		assert.True(t, gate.Allow(ctx, 5, 77))
		assert.True(t, gate.Allow(ctx, 6, 77))
		assert.True(t, gate.Allow(ctx, 5, 78))
		assert.False(t, gate.Allow(ctx, 6, 77))
	})

	t.Run("redis store honours the ttl", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		gate := dispatch.NewDedupGate(cache.NewRedisStore(client), testDispatchConfig(), discardLogger())

		assert.True(t, gate.Allow(ctx, 5, 77))
		assert.False(t, gate.Allow(ctx, 5, 77))
		assert.Equal(t, 30*time.Second, mr.TTL(dispatch.DedupKey(5, 77)))

		mr.FastForward(31 * time.Second)
		assert.True(t, gate.Allow(ctx, 5, 77))
	})

	t.Run("store failure fails open", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectSetNX(dispatch.DedupKey(5, 77), "1", 30*time.Second).SetErr(errors.New("connection refused"))
		mock.ExpectSetNX(dispatch.DedupKey(5, 77), "1", 30*time.Second).SetErr(errors.New("connection refused"))

		gate := dispatch.NewDedupGate(cache.NewRedisStore(client), testDispatchConfig(), discardLogger())

		assert.True(t, gate.Allow(ctx, 5, 77))
		assert.True(t, gate.Allow(ctx, 5, 77))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
