package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/infra"
	"ticketing-notifier/internal/infra/db"
	"ticketing-notifier/internal/pkg/pgconv"
)

const notificationColumns = `id, recipient_id, type, title, body, data, created_at, read_at`

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(
	ctx context.Context,
	recipientID int64,
	t notification.Type,
	title, body string,
	data notification.Data,
) (*notification.Record, error) {
	if data == nil {
		data = notification.Data{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode notification data", err)
	}

	rows, err := r.db.Query(ctx, `
		INSERT INTO notifications (recipient_id, type, title, body, data)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationColumns,
		recipientID, string(t), title, body, raw,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create notification", err)
	}
	return collectNotification(rows, "failed to create notification")
}

// LatestFor returns the most recently created notification of a recipient.
func (r *NotificationRepository) LatestFor(ctx context.Context, recipientID int64) (*notification.Record, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		recipientID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find latest notification", err)
	}
	return collectNotification(rows, "failed to find latest notification")
}

func (r *NotificationRepository) FindByID(ctx context.Context, id int64) (*notification.Record, error) {
	rows, err := r.db.Query(ctx, `SELECT `+notificationColumns+` FROM notifications WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find notification", err)
	}
	return collectNotification(rows, "failed to find notification")
}

func collectNotification(rows pgx.Rows, msg string) (*notification.Record, error) {
	row, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[notificationRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return toNotificationRecord(row)
}

func toNotificationRecord(row notificationRow) (*notification.Record, error) {
	data, err := decodeData(row.RawData)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode notification data", err)
	}

	rec := &notification.Record{}
	if err := copyRow(rec, &row); err != nil {
		return nil, infra.WrapRepoErr("failed to map notification row", err)
	}
	rec.Data = data
	return rec, nil
}
