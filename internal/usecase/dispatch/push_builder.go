package dispatch

import (
	"context"
	"errors"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/usecase/shared"
)

type PushDelivery struct {
	RecipientID int64
	TenantID    int64
	Message     notification.PushMessage
}

type PushBuilder interface {
	// Build returns an error marked ErrSkipped when the push should not be sent.
	Build(ctx context.Context, record *notification.Record, recipientID int64) (*PushDelivery, error)
}

type pushBuilderImpl struct {
	directory shared.Directory
	gate      DedupGate
}

func NewPushBuilder(directory shared.Directory, gate DedupGate) PushBuilder {
	return &pushBuilderImpl{
		directory: directory,
		gate:      gate,
	}
}

func (b *pushBuilderImpl) Build(ctx context.Context, record *notification.Record, recipientID int64) (*PushDelivery, error) {
	recipient, err := b.directory.UserByID(ctx, recipientID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, skip(ErrRecipientNotFound)
		}
		return nil, errs.Wrap(err, "failed to load recipient")
	}

	if !recipient.CanReceivePush() {
		return nil, skip(ErrNotPushEligible)
	}

	if !b.gate.Allow(ctx, recipient.ID, record.ID) {
		return nil, skip(ErrDuplicateDelivery)
	}

	member, err := b.directory.MemberByUserID(ctx, recipient.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, skip(ErrProfileNotFound)
		}
		return nil, errs.Wrap(err, "failed to load member profile")
	}

	msg := notification.Format(record.Type, record.Data)

	return &PushDelivery{
		RecipientID: recipient.ID,
		TenantID:    member.ID,
		Message: notification.PushMessage{
			Title: msg.Title,
			Body:  msg.Body,
			Data:  notification.BuildPushData(record.Data, record.ID),
		},
	}, nil
}
