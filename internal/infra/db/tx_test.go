//go:build unit

package db_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing-notifier/internal/infra/db"
	"ticketing-notifier/internal/pkg/errs"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(context.Context) error { t.rolledBack = true; return nil }

type fakeBeginner struct {
	txs []*fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

var fastRetry = db.RetryPolicy{Attempts: 3, Backoff: time.Millisecond}

func TestInTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits the result", func(t *testing.T) {
		b := &fakeBeginner{}

		got, err := db.InTx(ctx, b, fastRetry, func(db.DBTX) (int, error) { return 7, nil })

		require.NoError(t, err)
		assert.Equal(t, 7, got)
		require.Len(t, b.txs, 1)
		assert.True(t, b.txs[0].committed)
	})

	t.Run("replays serialization failures", func(t *testing.T) {
		b := &fakeBeginner{}
		calls := 0

		got, err := db.InTx(ctx, b, fastRetry, func(db.DBTX) (string, error) {
			calls++
			if calls < 3 {
				return "", &pgconn.PgError{Code: "40001"}
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", got)
		assert.Equal(t, 3, calls)
		assert.True(t, b.txs[0].rolledBack)
		assert.False(t, b.txs[0].committed)
	})

	t.Run("gives up after the policy's attempts", func(t *testing.T) {
		calls := 0

		_, err := db.InTx(ctx, &fakeBeginner{}, fastRetry, func(db.DBTX) (int, error) {
			calls++
			return 0, &pgconn.PgError{Code: "40P01"}
		})

		assert.True(t, errs.Is(err, db.ErrTxRetry))
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors are returned at once", func(t *testing.T) {
		calls := 0
		boom := errors.New("constraint violated")

		_, err := db.InTx(ctx, &fakeBeginner{}, fastRetry, func(db.DBTX) (int, error) {
			calls++
			return 0, boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("begin failure is marked", func(t *testing.T) {
		_, err := db.InTx(ctx, &fakeBeginner{err: errors.New("pool closed")}, fastRetry,
			func(db.DBTX) (int, error) { return 0, nil })

		assert.True(t, errs.Is(err, db.ErrTxBegin))
	})
}
