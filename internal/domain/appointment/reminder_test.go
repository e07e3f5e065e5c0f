//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"ticketing-notifier/internal/domain/appointment"

	"github.com/stretchr/testify/assert"
)

func offsetsOf(due []appointment.Due) []int {
	out := make([]int, 0, len(due))
	for _, d := range due {
		out = append(out, d.OffsetMinutes)
	}
	return out
}

func TestComputeDue(t *testing.T) {
	start := time.Date(2025, 3, 14, 10, 5, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want []int
	}{
		{name: "all offsets pending at ten o'clock", now: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC), want: []int{4, 3, 2, 1}},
		{name: "just before the five minute mark", now: time.Date(2025, 3, 14, 9, 59, 59, 0, time.UTC), want: []int{5, 4, 3, 2, 1}},
		{name: "mid minute", now: time.Date(2025, 3, 14, 10, 1, 30, 0, time.UTC), want: []int{3, 2, 1}},
		{name: "exactly on a firing time excludes it", now: time.Date(2025, 3, 14, 10, 4, 0, 0, time.UTC), want: []int{}},
		{name: "after the last reminder", now: time.Date(2025, 3, 14, 10, 4, 30, 0, time.UTC), want: []int{}},
		{name: "far in advance", now: start.Add(-time.Hour), want: []int{5, 4, 3, 2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := appointment.ComputeDue(start, tc.now)
			assert.Equal(t, tc.want, offsetsOf(got))
			for _, d := range got {
				assert.True(t, d.ReminderTime.After(tc.now))
				assert.Equal(t, start.Add(-time.Duration(d.OffsetMinutes)*time.Minute), d.ReminderTime)
			}
		})
	}

	t.Run("start at 10:04:30 seen at 10:00 drops the five minute reminder", func(t *testing.T) {
		at := time.Date(2025, 1, 1, 10, 4, 30, 0, time.UTC)
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

		got := appointment.ComputeDue(at, now)

		assert.Equal(t, []int{4, 3, 2, 1}, offsetsOf(got))
		assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 30, 0, time.UTC), got[0].ReminderTime)
		assert.Equal(t, time.Date(2025, 1, 1, 10, 3, 30, 0, time.UTC), got[3].ReminderTime)
	})
}

func TestUrgencyFor(t *testing.T) {
	assert.Equal(t, appointment.UrgencyMedium, appointment.UrgencyFor(5))
	assert.Equal(t, appointment.UrgencyMedium, appointment.UrgencyFor(3))
	assert.Equal(t, appointment.UrgencyHigh, appointment.UrgencyFor(2))
	assert.Equal(t, appointment.UrgencyHigh, appointment.UrgencyFor(1))
}

func TestAppointment(t *testing.T) {
	original := appointment.Appointment{
		ID:           7,
		Status:       appointment.StatusScheduled,
		ScheduledFor: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	t.Run("WithScheduledFor leaves the original untouched", func(t *testing.T) {
		moved := original.WithScheduledFor(original.ScheduledFor.Add(4 * time.Hour))
		assert.Equal(t, time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC), moved.ScheduledFor)
		assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), original.ScheduledFor)
		assert.Equal(t, original.ID, moved.ID)
	})

	t.Run("Version changes with the scheduled time only", func(t *testing.T) {
		local := original.ScheduledFor.In(time.FixedZone("JST", 9*3600))
		assert.Equal(t, appointment.Version(original.ScheduledFor), appointment.Version(local))
		assert.NotEqual(t, appointment.Version(original.ScheduledFor), appointment.Version(original.ScheduledFor.Add(time.Minute)))
	})

	t.Run("status checks", func(t *testing.T) {
		assert.True(t, original.IsScheduled())
		assert.True(t, appointment.StatusInProgress.IsValid())
		assert.False(t, appointment.Status("postponed").IsValid())
	})
}
