package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/user"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/shared"
)

// Handlers holds one method per domain event. Router wires them by kind.
type Handlers struct {
	directory     shared.Directory
	notifications shared.NotificationStore
	mailer        shared.Mailer
	broadcaster   shared.Broadcaster
	pusher        Pusher
	scheduler     ReminderScheduler
	clock         clock.Clock
	logger        *slog.Logger
}

func NewHandlers(
	directory shared.Directory,
	notifications shared.NotificationStore,
	mailer shared.Mailer,
	broadcaster shared.Broadcaster,
	pusher Pusher,
	scheduler ReminderScheduler,
	clock clock.Clock,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		directory:     directory,
		notifications: notifications,
		mailer:        mailer,
		broadcaster:   broadcaster,
		pusher:        pusher,
		scheduler:     scheduler,
		clock:         clock,
		logger:        logger,
	}
}

func (h *Handlers) OnNotificationBroadcastRequested(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.NotificationBroadcastRequested)
	if !ok {
		return unexpectedEvent(ev)
	}

	record := e.Record
	if record == nil {
		var err error
		record, err = h.notifications.FindByID(ctx, e.NotificationID)
		if err != nil {
			return relationErr("notification", err)
		}
	}

	h.pusher.Deliver(ctx, record, e.RecipientUserID)
	return nil
}

// notifyLater queues mail + database delivery for one recipient on the request's deferred list.
func (h *Handlers) notifyLater(ctx context.Context, recipient *user.User, t notification.Type, data notification.Data) {
	name := fmt.Sprintf("notify %s user=%d", t, recipient.ID)
	Defer(ctx, h.logger, name, func(ctx context.Context) error {
		record, err := h.persist(ctx, recipient, t, data)
		if err != nil {
			return err
		}
		h.announce(ctx, recipient.ID, record)
		return nil
	})
}

// persist sends the mail channel and stores the database channel. A mail failure does not stop the record.
func (h *Handlers) persist(ctx context.Context, recipient *user.User, t notification.Type, data notification.Data) (*notification.Record, error) {
	if recipient.Email != "" {
		mail := notification.RenderMail(t, data)
		if err := h.mailer.Send(ctx, recipient.Email, mail.Subject, mail.Body); err != nil {
			metrics.NotificationsSent.WithLabelValues(t.String(), notification.ChannelMail.String(), "error").Inc()
			h.logger.Error("failed to send notification mail",
				slog.Int64("recipient_id", recipient.ID),
				slog.String("type", t.String()),
				slog.Any("error", err))
		} else {
			metrics.NotificationsSent.WithLabelValues(t.String(), notification.ChannelMail.String(), "ok").Inc()
		}
	}

	content := notification.RenderDatabase(t, data)
	record, err := h.notifications.Create(ctx, recipient.ID, content.Type, content.Title, content.Body, content.Data)
	if err != nil {
		metrics.NotificationsSent.WithLabelValues(t.String(), notification.ChannelDatabase.String(), "error").Inc()
		return nil, errs.Mark(errs.Wrapf(err, "failed to store %s notification for user %d", t, recipient.ID), errs.ErrDatabaseOperationFailed)
	}
	metrics.NotificationsSent.WithLabelValues(t.String(), notification.ChannelDatabase.String(), "ok").Inc()
	return record, nil
}

// announce publishes a stored record on the recipient's real-time channel and hands it to the push pipeline.
func (h *Handlers) announce(ctx context.Context, recipientID int64, record *notification.Record) {
	channel := h.broadcaster.ChannelKeyForUser(recipientID)
	if err := h.broadcaster.Publish(ctx, channel, notification.EventCreated, notification.BroadcastFromRecord(record)); err != nil {
		metrics.NotificationsSent.WithLabelValues(record.Type.String(), notification.ChannelBroadcast.String(), "error").Inc()
		h.logger.Error("failed to broadcast notification",
			slog.Int64("recipient_id", recipientID),
			slog.Int64("notification_id", record.ID),
			slog.Any("error", err))
	} else {
		metrics.NotificationsSent.WithLabelValues(record.Type.String(), notification.ChannelBroadcast.String(), "ok").Inc()
	}

	err := h.OnNotificationBroadcastRequested(ctx, notification.NotificationBroadcastRequested{
		NotificationID:  record.ID,
		RecipientUserID: recipientID,
		Record:          record,
	})
	if err != nil {
		logHandlerError(h.logger, notification.KindNotificationBroadcastRequested.String(), err)
	}
}

func (h *Handlers) loadUser(ctx context.Context, id int64, what string) (*user.User, error) {
	u, err := h.directory.UserByID(ctx, id)
	if err != nil {
		return nil, relationErr(what, err)
	}
	return u, nil
}

// recipientSet collects users once each, skipping an excluded actor.
type recipientSet struct {
	users   []*user.User
	seen    map[int64]bool
	exclude int64
}

func newRecipientSet(exclude *int64) *recipientSet {
	rs := &recipientSet{seen: make(map[int64]bool)}
	if exclude != nil {
		rs.exclude = *exclude
	}
	return rs
}

func (rs *recipientSet) add(u *user.User) {
	if u == nil || u.ID == 0 || u.ID == rs.exclude || rs.seen[u.ID] {
		return
	}
	rs.seen[u.ID] = true
	rs.users = append(rs.users, u)
}

func unexpectedEvent(ev notification.Event) error {
	return errs.Mark(fmt.Errorf("unexpected payload %T for %s", ev, ev.Kind()), errs.ErrInvalidEvent)
}

func isNotFound(err error) bool {
	return errors.Is(err, shared.ErrNotFound)
}
