package dispatch

import (
	"context"
	"log/slog"
	"time"

	"ticketing-notifier/internal/domain/notification"
)

// OnAppointmentCreated emits the reminders still due at creation time.
func (h *Handlers) OnAppointmentCreated(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.AppointmentCreated)
	if !ok {
		return unexpectedEvent(ev)
	}
	appt, err := h.directory.AppointmentByID(ctx, e.AppointmentID)
	if err != nil {
		return relationErr("appointment", err)
	}

	sent, err := h.scheduler.Schedule(ctx, appt, h.clock.Now(), false)
	if err != nil {
		return err
	}
	h.logger.Info("appointment created, reminders emitted",
		slog.Int64("appointment_id", appt.ID),
		slog.Int("broadcasts", sent))
	return nil
}

// OnAppointmentRescheduled notifies both parties, re-broadcasts the records it just stored and
// recomputes reminders against the new time only.
func (h *Handlers) OnAppointmentRescheduled(ctx context.Context, ev notification.Event) error {
	e, ok := ev.(notification.AppointmentRescheduled)
	if !ok {
		return unexpectedEvent(ev)
	}
	stored, err := h.directory.AppointmentByID(ctx, e.AppointmentID)
	if err != nil {
		return relationErr("appointment", err)
	}
	appt := stored.WithScheduledFor(e.NewScheduledFor)

	parties, err := loadAppointmentParties(ctx, h.directory, appt)
	if err != nil {
		return err
	}

	data := parties.data(appt)
	if !e.OldScheduledFor.IsZero() {
		data[notification.KeyOldScheduledFor] = e.OldScheduledFor.Format(time.RFC3339)
	}

	// Only records stored by this call are announced.
	announced := 0
	for _, r := range parties.recipients() {
		record, err := h.persist(ctx, r, notification.TypeAppointmentRescheduled, data)
		if err != nil {
			logHandlerError(h.logger, "appointment rescheduled notice", err, slog.Int64("recipient_id", r.ID))
			continue
		}
		h.announce(ctx, r.ID, record)
		announced++
	}

	sent, err := h.scheduler.Schedule(ctx, appt, h.clock.Now(), true)
	if err != nil {
		if announced == 0 {
			return err
		}
		// A retry would store the notices again. The catch-up scan picks up reminders still due.
		logHandlerError(h.logger, "appointment rescheduled reminders", err, slog.Int64("appointment_id", appt.ID))
		return nil
	}
	h.logger.Info("appointment rescheduled, reminders emitted",
		slog.Int64("appointment_id", appt.ID),
		slog.Int("broadcasts", sent))
	return nil
}
