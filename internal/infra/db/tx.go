package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ticketing-notifier/internal/pkg/errs"
)

var (
	ErrTxBegin  = errs.New("failed to begin transaction")
	ErrTxCommit = errs.New("failed to commit transaction")
	ErrTxRetry  = errs.New("transaction failed after retries")
)

// TxBeginner is satisfied by *pgxpool.Pool.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// RetryPolicy bounds how often a transaction hit by a serialization failure or deadlock is replayed.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetry suits short claim transactions where concurrent workers race on the same rows.
var DefaultRetry = RetryPolicy{Attempts: 3, Backoff: 50 * time.Millisecond}

// InTx runs fn in a transaction, committing on success. fn may run more than once.
func InTx[T any](ctx context.Context, pool TxBeginner, policy RetryPolicy, fn func(tx DBTX) (T, error)) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		result, err := runOnce(ctx, pool, fn)
		if err == nil {
			return result, nil
		}
		if !retryable(err) {
			return zero, err
		}
		if attempt >= policy.Attempts {
			return zero, errs.Mark(err, ErrTxRetry)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(time.Duration(attempt) * policy.Backoff):
		}
	}
}

func runOnce[T any](ctx context.Context, pool TxBeginner, fn func(tx DBTX) (T, error)) (T, error) {
	var zero T

	tx, err := pool.Begin(ctx)
	if err != nil {
		return zero, errs.Mark(err, ErrTxBegin)
	}
	// Rollback after Commit is a no-op returning ErrTxClosed.
	defer func() { _ = tx.Rollback(context.WithoutCancel(ctx)) }()

	result, err := fn(tx)
	if err != nil {
		return zero, err
	}
	if err := tx.Commit(ctx); err != nil {
		return zero, errs.Mark(err, ErrTxCommit)
	}
	return result, nil
}

// 40001 serialization_failure, 40P01 deadlock_detected.
func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
