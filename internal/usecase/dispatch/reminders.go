package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ticketing-notifier/internal/domain/appointment"
	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/domain/ticket"
	"ticketing-notifier/internal/domain/user"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/pkg/metrics"
	"ticketing-notifier/internal/usecase/shared"
)

const defaultReminderMarkerGrace = 10 * time.Minute

// ReminderPayload is broadcast to each recipient for every due reminder offset.
type ReminderPayload struct {
	Type          notification.Type            `json:"type"`
	Title         string                       `json:"title"`
	Body          string                       `json:"body"`
	AppointmentID int64                        `json:"appointment_id"`
	Appointment   notification.AppointmentData `json:"appointment_data"`
	MinutesBefore int                          `json:"minutes_before"`
	Urgency       appointment.Urgency          `json:"urgency"`
	IsRescheduled bool                         `json:"is_rescheduled"`
	ReminderTime  time.Time                    `json:"reminder_time"`
}

type ReminderScheduler interface {
	// Schedule emits every reminder still due relative to now and returns how many were broadcast.
	// A missing technician, ticket or member returns an error marked ErrMissingRelation and emits nothing.
	Schedule(ctx context.Context, appt *appointment.Appointment, now time.Time, rescheduled bool) (int, error)
	// ScanUpcoming schedules every appointment starting within the catch-up window.
	ScanUpcoming(ctx context.Context) int
}

type reminderSchedulerImpl struct {
	directory   shared.Directory
	store       shared.Store
	broadcaster shared.Broadcaster
	clock       clock.Clock
	window      time.Duration
	markerGrace time.Duration
	logger      *slog.Logger
}

func NewReminderScheduler(
	directory shared.Directory,
	store shared.Store,
	broadcaster shared.Broadcaster,
	clock clock.Clock,
	cfg config.DispatchConfig,
	logger *slog.Logger,
) ReminderScheduler {
	window := cfg.CatchUpWindow
	if window <= 0 {
		window = appointment.CatchUpWindow
	}
	grace := cfg.ReminderMarkerGrace
	if grace <= 0 {
		grace = defaultReminderMarkerGrace
	}
	return &reminderSchedulerImpl{
		directory:   directory,
		store:       store,
		broadcaster: broadcaster,
		clock:       clock,
		window:      window,
		markerGrace: grace,
		logger:      logger,
	}
}

// ReminderMarkerKey identifies one reminder of one appointment version for one recipient.
func ReminderMarkerKey(appointmentID int64, version string, offset int, recipientID int64) string {
	return fmt.Sprintf("appointment_reminder:%d:%s:%d:%d", appointmentID, version, offset, recipientID)
}

func (s *reminderSchedulerImpl) Schedule(ctx context.Context, appt *appointment.Appointment, now time.Time, rescheduled bool) (int, error) {
	parties, err := loadAppointmentParties(ctx, s.directory, appt)
	if err != nil {
		return 0, err
	}

	due := appointment.ComputeDue(appt.ScheduledFor, now)
	if len(due) == 0 {
		return 0, nil
	}

	base := parties.data(appt)
	apptData := notification.AppointmentDataFrom(base)
	version := appointment.Version(appt.ScheduledFor)
	markerTTL := appt.ScheduledFor.Sub(now) + s.markerGrace

	sent := 0
	for _, d := range due {
		data := base.Merge(notification.Data{notification.KeyMinutesBefore: d.OffsetMinutes})
		msg := notification.Format(notification.TypeAppointmentReminder, data)
		payload := ReminderPayload{
			Type:          notification.TypeAppointmentReminder,
			Title:         msg.Title,
			Body:          msg.Body,
			AppointmentID: appt.ID,
			Appointment:   *apptData,
			MinutesBefore: d.OffsetMinutes,
			Urgency:       d.Urgency,
			IsRescheduled: rescheduled,
			ReminderTime:  d.ReminderTime,
		}

		for _, recipientID := range parties.recipientIDs() {
			if !s.claim(ctx, ReminderMarkerKey(appt.ID, version, d.OffsetMinutes, recipientID), markerTTL) {
				continue
			}
			channel := s.broadcaster.ChannelKeyForUser(recipientID)
			if err := s.broadcaster.Publish(ctx, channel, notification.EventCreated, payload); err != nil {
				s.logger.Error("failed to broadcast reminder",
					slog.Int64("appointment_id", appt.ID),
					slog.Int64("recipient_id", recipientID),
					slog.Int("minutes_before", d.OffsetMinutes),
					slog.Any("error", err))
				continue
			}
			metrics.RemindersEmitted.Inc()
			sent++
		}
	}

	s.logger.Debug("appointment reminders scheduled",
		slog.Int64("appointment_id", appt.ID),
		slog.Int("due_offsets", len(due)),
		slog.Int("broadcasts", sent),
		slog.Bool("rescheduled", rescheduled))
	return sent, nil
}

// claim fails open so a store outage degrades to possible duplicate reminders, never to silence.
func (s *reminderSchedulerImpl) claim(ctx context.Context, key string, ttl time.Duration) bool {
	ok, err := s.store.SetNX(ctx, key, "1", ttl)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("reminder_marker").Inc()
		s.logger.Error("reminder marker store unavailable, emitting anyway",
			slog.String("key", key),
			slog.Any("error", err))
		return true
	}
	return ok
}

func (s *reminderSchedulerImpl) ScanUpcoming(ctx context.Context) int {
	now := s.clock.Now()
	appts, err := s.directory.ScheduledAppointmentsBetween(ctx, now, now.Add(s.window))
	if err != nil {
		s.logger.Error("failed to load upcoming appointments", slog.Any("error", err))
		return 0
	}

	total := 0
	for i := range appts {
		if !appts[i].IsScheduled() {
			continue
		}
		total += s.scheduleOne(ctx, &appts[i], now)
	}
	return total
}

func (s *reminderSchedulerImpl) scheduleOne(ctx context.Context, appt *appointment.Appointment, now time.Time) (sent int) {
	defer func() {
		if r := recover(); r != nil {
			err := errs.FromPanic(r)
			s.logger.Error("panic while scheduling appointment reminders",
				slog.Int64("appointment_id", appt.ID),
				slog.Any("error", err),
				slog.Any("stack", errs.ExtractStackLines(err, 10)))
			sent = 0
		}
	}()

	sent, err := s.Schedule(ctx, appt, now, false)
	if err != nil {
		logHandlerError(s.logger, "appointment reminder scan", err, slog.Int64("appointment_id", appt.ID))
	}
	return sent
}

// appointmentParties are the people an appointment notification goes to.
type appointmentParties struct {
	technical     *user.Technical
	technicalUser *user.User
	ticket        *ticket.Context
}

func loadAppointmentParties(ctx context.Context, dir shared.Directory, appt *appointment.Appointment) (*appointmentParties, error) {
	tech, err := dir.TechnicalByID(ctx, appt.TechnicalID)
	if err != nil {
		return nil, relationErr("technician", err)
	}
	techUser, err := dir.UserByID(ctx, tech.UserID)
	if err != nil {
		return nil, relationErr("technician user", err)
	}
	tctx, err := dir.TicketContext(ctx, appt.TicketID)
	if err != nil {
		return nil, relationErr("ticket or member", err)
	}
	return &appointmentParties{technical: tech, technicalUser: techUser, ticket: tctx}, nil
}

func relationErr(what string, err error) error {
	if errors.Is(err, shared.ErrNotFound) {
		return missing(what, err)
	}
	return errs.Wrapf(err, "failed to load %s", what)
}

func (p *appointmentParties) recipients() []*user.User {
	out := []*user.User{p.technicalUser}
	if p.ticket.MemberUser.ID != p.technicalUser.ID {
		member := p.ticket.MemberUser
		out = append(out, &member)
	}
	return out
}

func (p *appointmentParties) recipientIDs() []int64 {
	rs := p.recipients()
	ids := make([]int64, len(rs))
	for i, r := range rs {
		ids[i] = r.ID
	}
	return ids
}

// data describes the appointment with its technician and ticket context.
func (p *appointmentParties) data(appt *appointment.Appointment) notification.Data {
	d := p.ticket.Data()
	d[notification.KeyAppointmentID] = appt.ID
	d[notification.KeyAppointmentStatus] = appt.Status.String()
	d[notification.KeyScheduledFor] = appt.ScheduledFor.Format(time.RFC3339)
	d[notification.KeyTechnicalID] = p.technical.ID
	name := p.technical.Name
	if name == "" {
		name = p.technicalUser.Name
	}
	if name != "" {
		d[notification.KeyTechnicalName] = name
	}
	if p.technical.Phone != "" {
		d[notification.KeyTechnicalPhone] = p.technical.Phone
	}
	if appt.Title != "" {
		d[notification.KeyAppointmentTitle] = appt.Title
	}
	if appt.Address != "" {
		d[notification.KeyAppointmentAddress] = appt.Address
	}
	return d
}
