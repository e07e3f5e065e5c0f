package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"ticketing-notifier/internal/infra"
	"ticketing-notifier/internal/infra/db"
	"ticketing-notifier/internal/pkg/pgconv"
	"ticketing-notifier/internal/usecase/shared"
)

const (
	JobStatusQueued     = "queued"
	JobStatusProcessing = "processing"
	JobStatusDone       = "done"
	JobStatusFailed     = "failed"

	// A processing job older than this is assumed to belong to a dead worker and is claimed again.
	staleProcessingAfter = 5 * time.Minute
)

type outboxJobRow struct {
	ID       pgtype.UUID `db:"id"`
	Kind     string      `db:"kind"`
	Payload  []byte      `db:"payload"`
	Attempts int32       `db:"attempts"`
}

type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

// CreateJob enqueues an event. The ticketing application does the same insert inside its own transactions.
func (r *OutboxRepository) CreateJob(ctx context.Context, tx db.DBTX, kind string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	var id pgtype.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO notification_jobs (kind, payload, run_at, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		kind, payload, pgconv.TimeToPgtype(runAt), JobStatusQueued,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}
	return uuid.UUID(id.Bytes), nil
}

// Claim locks up to limit due jobs, skipping rows other workers hold, and marks them processing.
func (r *OutboxRepository) Claim(ctx context.Context, limit int32, now time.Time) ([]shared.OutboxJob, error) {
	return db.InTx(ctx, r.pool, db.DefaultRetry, func(tx db.DBTX) ([]shared.OutboxJob, error) {
		rows, err := tx.Query(ctx, `
			SELECT id, kind, payload, attempts
			FROM notification_jobs
			WHERE (status = $1 AND run_at <= $2)
			   OR (status = $3 AND updated_at < $4)
			ORDER BY run_at, created_at
			LIMIT $5
			FOR UPDATE SKIP LOCKED`,
			JobStatusQueued, pgconv.TimeToPgtype(now),
			JobStatusProcessing, pgconv.TimeToPgtype(now.Add(-staleProcessingAfter)),
			limit,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to select pending notification jobs", err)
		}
		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[outboxJobRow])
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending notification jobs", err)
		}
		if len(collected) == 0 {
			return nil, nil
		}

		jobs := make([]shared.OutboxJob, len(collected))
		ids := make([]pgtype.UUID, len(collected))
		for i, row := range collected {
			jobs[i] = shared.OutboxJob{
				ID:       uuid.UUID(row.ID.Bytes),
				Kind:     row.Kind,
				Payload:  row.Payload,
				Attempts: row.Attempts,
			}
			ids[i] = row.ID
		}

		if _, err := tx.Exec(ctx, `
			UPDATE notification_jobs
			SET status = $1, updated_at = $2
			WHERE id = ANY($3)`,
			JobStatusProcessing, pgconv.TimeToPgtype(now), ids,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to mark notification jobs processing", err)
		}
		return jobs, nil
	})
}

func (r *OutboxRepository) Complete(ctx context.Context, id uuid.UUID) error {
	return r.updateStatus(ctx, r.pool, id, JobStatusDone, nil, nil)
}

// Fail requeues the job at retryAt, or marks it failed for good when retryAt is nil.
func (r *OutboxRepository) Fail(ctx context.Context, id uuid.UUID, lastErr string, retryAt *time.Time) error {
	if retryAt != nil {
		return r.updateStatus(ctx, r.pool, id, JobStatusQueued, &lastErr, retryAt)
	}
	return r.updateStatus(ctx, r.pool, id, JobStatusFailed, &lastErr, nil)
}

func (r *OutboxRepository) updateStatus(ctx context.Context, q db.DBTX, id uuid.UUID, status string, lastErr *string, runAt *time.Time) error {
	var next pgtype.Timestamptz
	if runAt != nil {
		next = pgconv.TimeToPgtype(*runAt)
	}

	tag, err := q.Exec(ctx, `
		UPDATE notification_jobs
		SET status     = $2,
		    attempts   = attempts + 1,
		    last_error = $3,
		    run_at     = COALESCE($4, run_at),
		    updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(id), status, pgconv.StringPtrToPgtype(lastErr), next,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	return nil
}
