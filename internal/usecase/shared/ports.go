package shared

import (
	"context"
	"time"

	"ticketing-notifier/internal/domain/appointment"
	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/ticket"
	"ticketing-notifier/internal/domain/user"
	"ticketing-notifier/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrNotFound is matched by every port when the requested row does not exist.
var ErrNotFound = errs.ErrNotFound

// Store is a TTL-capable key/value store. Writes must be visible to every serving instance.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX writes only when the key is absent and reports whether it did.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Has(ctx context.Context, key string) (bool, error)
}

type NotificationStore interface {
	Create(ctx context.Context, recipientID int64, t notification.Type, title, body string, data notification.Data) (*notification.Record, error)
	LatestFor(ctx context.Context, recipientID int64) (*notification.Record, error)
	FindByID(ctx context.Context, id int64) (*notification.Record, error)
}

// Directory reads entities owned by the CRUD application.
type Directory interface {
	UserByID(ctx context.Context, id int64) (*user.User, error)
	MemberByUserID(ctx context.Context, userID int64) (*user.Member, error)
	TechnicalByID(ctx context.Context, id int64) (*user.Technical, error)
	TicketContext(ctx context.Context, ticketID int64) (*ticket.Context, error)
	CommentByID(ctx context.Context, id int64) (*ticket.Comment, error)
	AppointmentByID(ctx context.Context, id int64) (*appointment.Appointment, error)
	ScheduledAppointmentsBetween(ctx context.Context, from, to time.Time) ([]appointment.Appointment, error)
}

// PushTransport delivers to devices. Failures are reported in the result, never as errors.
type PushTransport interface {
	SendToTenant(ctx context.Context, tenantID int64, msg notification.PushMessage) notification.PushResult
	SendSingle(ctx context.Context, token string, tokenType notification.TokenType, title, body string, data map[string]any) notification.PushResult
}

// Broadcaster publishes to per-user real-time channels. Delivery is at-most-once.
type Broadcaster interface {
	Publish(ctx context.Context, channelKey, eventName string, payload any) error
	ChannelKeyForUser(userID int64) string
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type OutboxJob struct {
	ID       uuid.UUID
	Kind     string
	Payload  []byte
	Attempts int32
}

// OutboxQueue is the notification_jobs table written by the CRUD application.
type OutboxQueue interface {
	Claim(ctx context.Context, limit int32, now time.Time) ([]OutboxJob, error)
	Complete(ctx context.Context, id uuid.UUID) error
	Fail(ctx context.Context, id uuid.UUID, lastErr string, retryAt *time.Time) error
}
