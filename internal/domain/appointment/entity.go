package appointment

import (
	"strconv"
	"time"
)

// Appointment is a read-only snapshot owned by the scheduling application.
type Appointment struct {
	ID           int64
	TicketID     int64
	TechnicalID  int64
	Title        string
	Address      string
	Status       Status
	ScheduledFor time.Time
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == StatusScheduled
}

// WithScheduledFor returns a copy pointing at a different time, used when an event carries a newer time than the row.
func (a Appointment) WithScheduledFor(t time.Time) *Appointment {
	a.ScheduledFor = t
	return &a
}

// Version identifies one scheduled time of an appointment. Rescheduling yields a new version.
func Version(scheduledFor time.Time) string {
	return strconv.FormatInt(scheduledFor.UTC().Unix(), 10)
}
