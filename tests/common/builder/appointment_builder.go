//go:build unit || e2e

package builder

import (
	"time"

	"ticketing-notifier/internal/domain/appointment"
	"ticketing-notifier/internal/domain/notification"
)

type AppointmentBuilder struct {
	appointment.Appointment
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{appointment.Appointment{
		ID:           41,
		TicketID:     DefaultTicketID,
		TechnicalID:  DefaultTechnicalID,
		Title:        "Boiler inspection",
		Address:      "12 Harbour St",
		Status:       appointment.StatusScheduled,
		ScheduledFor: time.Date(2025, 1, 1, 10, 5, 0, 0, time.UTC),
	}}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) WithScheduledFor(t time.Time) *AppointmentBuilder {
	b.ScheduledFor = t
	return b
}

func (b *AppointmentBuilder) WithStatus(s appointment.Status) *AppointmentBuilder {
	b.Status = s
	return b
}

func (b *AppointmentBuilder) BuildDomain() *appointment.Appointment {
	a := b.Appointment
	return &a
}

type RecordBuilder struct {
	notification.Record
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{notification.Record{
		ID:          31,
		RecipientID: 100,
		Type:        notification.TypeTicketStatusChanged,
		Title:       "🔄 Ticket Status Changed",
		Body:        `Ticket "AC not cooling" has changed from Open to Resolved`,
		Data: notification.Data{
			notification.KeyTicketID:    int64(DefaultTicketID),
			notification.KeyTicketTitle: "AC not cooling",
			notification.KeyOldStatus:   "open",
			notification.KeyNewStatus:   "resolved",
		},
		CreatedAt: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}}
}

func (b *RecordBuilder) With(mutate func(*RecordBuilder)) *RecordBuilder {
	mutate(b)
	return b
}

func (b *RecordBuilder) BuildDomain() *notification.Record {
	r := b.Record
	return &r
}
