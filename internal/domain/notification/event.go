package notification

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownEventKind = errors.New("unknown event kind")
	ErrInvalidPayload   = errors.New("invalid event payload")
)

type EventKind string

const (
	KindAppointmentCreated             EventKind = "appointment.created"
	KindAppointmentRescheduled         EventKind = "appointment.rescheduled"
	KindTicketCreated                  EventKind = "ticket.created"
	KindTicketAssigned                 EventKind = "ticket.assigned"
	KindTicketStatusChanged            EventKind = "ticket.status_changed"
	KindTicketCommentAdded             EventKind = "ticket.comment_added"
	KindNotificationBroadcastRequested EventKind = "notification.broadcast_requested"
)

func (k EventKind) String() string {
	return string(k)
}

// Event is a domain fact that may produce notifications. Each kind has exactly one payload struct.
type Event interface {
	Kind() EventKind
	validate() error
}

type AppointmentCreated struct {
	AppointmentID int64 `json:"appointment_id"`
}

type AppointmentRescheduled struct {
	AppointmentID   int64     `json:"appointment_id"`
	OldScheduledFor time.Time `json:"old_scheduled_for"`
	NewScheduledFor time.Time `json:"new_scheduled_for"`
}

type TicketCreated struct {
	TicketID int64 `json:"ticket_id"`
}

type TicketAssigned struct {
	TicketID            int64  `json:"ticket_id"`
	TechnicalID         int64  `json:"technical_id"`
	PreviousTechnicalID *int64 `json:"previous_technical_id,omitempty"`
	AssignedByUserID    *int64 `json:"assigned_by_user_id,omitempty"`
}

type TicketStatusChanged struct {
	TicketID        int64  `json:"ticket_id"`
	OldStatus       string `json:"old_status"`
	NewStatus       string `json:"new_status"`
	ChangedByUserID *int64 `json:"changed_by_user_id,omitempty"`
}

type TicketCommentAdded struct {
	CommentID int64 `json:"comment_id"`
}

// NotificationBroadcastRequested announces that a persisted notification exists for a user.
// Record is set on the in-process path; the wire form carries only the id.
type NotificationBroadcastRequested struct {
	NotificationID  int64   `json:"notification_id"`
	RecipientUserID int64   `json:"recipient_user_id"`
	Record          *Record `json:"-"`
}

func (AppointmentCreated) Kind() EventKind             { return KindAppointmentCreated }
func (AppointmentRescheduled) Kind() EventKind         { return KindAppointmentRescheduled }
func (TicketCreated) Kind() EventKind                  { return KindTicketCreated }
func (TicketAssigned) Kind() EventKind                 { return KindTicketAssigned }
func (TicketStatusChanged) Kind() EventKind            { return KindTicketStatusChanged }
func (TicketCommentAdded) Kind() EventKind             { return KindTicketCommentAdded }
func (NotificationBroadcastRequested) Kind() EventKind { return KindNotificationBroadcastRequested }

func (e AppointmentCreated) validate() error {
	return requirePositive("appointment_id", e.AppointmentID)
}

func (e AppointmentRescheduled) validate() error {
	if err := requirePositive("appointment_id", e.AppointmentID); err != nil {
		return err
	}
	if e.NewScheduledFor.IsZero() {
		return fmt.Errorf("%w: new_scheduled_for is required", ErrInvalidPayload)
	}
	return nil
}

func (e TicketCreated) validate() error {
	return requirePositive("ticket_id", e.TicketID)
}

func (e TicketAssigned) validate() error {
	if err := requirePositive("ticket_id", e.TicketID); err != nil {
		return err
	}
	return requirePositive("technical_id", e.TechnicalID)
}

func (e TicketStatusChanged) validate() error {
	if err := requirePositive("ticket_id", e.TicketID); err != nil {
		return err
	}
	if e.NewStatus == "" {
		return fmt.Errorf("%w: new_status is required", ErrInvalidPayload)
	}
	return nil
}

func (e TicketCommentAdded) validate() error {
	return requirePositive("comment_id", e.CommentID)
}

func (e NotificationBroadcastRequested) validate() error {
	if e.Record == nil {
		if err := requirePositive("notification_id", e.NotificationID); err != nil {
			return err
		}
	}
	return requirePositive("recipient_user_id", e.RecipientUserID)
}

func requirePositive(field string, v int64) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s is required", ErrInvalidPayload, field)
	}
	return nil
}

// DecodeEvent turns a wire payload into the event variant for kind.
func DecodeEvent(kind EventKind, payload []byte) (Event, error) {
	var (
		ev  Event
		err error
	)
	switch kind {
	case KindAppointmentCreated:
		ev, err = decodeInto[AppointmentCreated](payload)
	case KindAppointmentRescheduled:
		ev, err = decodeInto[AppointmentRescheduled](payload)
	case KindTicketCreated:
		ev, err = decodeInto[TicketCreated](payload)
	case KindTicketAssigned:
		ev, err = decodeInto[TicketAssigned](payload)
	case KindTicketStatusChanged:
		ev, err = decodeInto[TicketStatusChanged](payload)
	case KindTicketCommentAdded:
		ev, err = decodeInto[TicketCommentAdded](payload)
	case KindNotificationBroadcastRequested:
		ev, err = decodeInto[NotificationBroadcastRequested](payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventKind, kind)
	}
	if err != nil {
		return nil, err
	}
	if err := ev.validate(); err != nil {
		return nil, err
	}
	return ev, nil
}

func decodeInto[T Event](payload []byte) (Event, error) {
	var v T
	if len(payload) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidPayload)
	}
	if err := json.Unmarshal(payload, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return v, nil
}
