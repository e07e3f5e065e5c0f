//go:build unit

package dispatch_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketing-notifier/internal/domain/appointment"
	"ticketing-notifier/internal/domain/notification"
	"ticketing-notifier/internal/infra/cache"
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/pkg/errs"
	"ticketing-notifier/internal/usecase/dispatch"
	"ticketing-notifier/internal/usecase/shared"
	"ticketing-notifier/tests/common/builder"
	sharedmock "ticketing-notifier/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reminderFixture struct {
	dir   *sharedmock.MockDirectory
	store *cache.LocalStore
	clock *clock.MockClock
	sent  *[]published
	sched dispatch.ReminderScheduler
}

func newReminderFixture(t *testing.T, now time.Time) *reminderFixture {
	ctrl := gomock.NewController(t)
	f := &reminderFixture{
		dir:   sharedmock.NewMockDirectory(ctrl),
		clock: clock.NewMockClock(now),
	}
	f.store = cache.NewLocalStore(f.clock, time.Minute)
	broadcaster := sharedmock.NewMockBroadcaster(ctrl)
	f.sent = recordPublishes(broadcaster)
	f.sched = dispatch.NewReminderScheduler(f.dir, f.store, broadcaster, f.clock, testDispatchConfig(), discardLogger())
	return f
}

func reminderPayloads(t *testing.T, sent []published) []dispatch.ReminderPayload {
	t.Helper()
	out := make([]dispatch.ReminderPayload, 0, len(sent))
	for _, p := range sent {
		require.Equal(t, notification.EventCreated, p.event)
		payload, ok := p.payload.(dispatch.ReminderPayload)
		require.True(t, ok, "unexpected payload %T", p.payload)
		out = append(out, payload)
	}
	return out
}

func TestReminderScheduler_Schedule(t *testing.T) {
	ctx := context.Background()

	t.Run("emits each pending offset to technician and member", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)
		appt := builder.NewAppointmentBuilder().
			WithScheduledFor(time.Date(2025, 1, 1, 10, 4, 30, 0, time.UTC)).
			BuildDomain()

		sent, err := f.sched.Schedule(ctx, appt, now, false)

		require.NoError(t, err)
		assert.Equal(t, 8, sent)
		require.Len(t, *f.sent, 8)

		channels := map[string]int{}
		offsets := map[int]int{}
		for i, p := range reminderPayloads(t, *f.sent) {
			channels[(*f.sent)[i].channel]++
			offsets[p.MinutesBefore]++
			assert.Equal(t, notification.TypeAppointmentReminder, p.Type)
			assert.Equal(t, appt.ID, p.AppointmentID)
			assert.Equal(t, appointment.UrgencyFor(p.MinutesBefore), p.Urgency)
			assert.Equal(t, appt.ScheduledFor.Add(-time.Duration(p.MinutesBefore)*time.Minute), p.ReminderTime)
			assert.False(t, p.IsRescheduled)
			assert.Contains(t, p.Body, "Boiler inspection")
		}
		assert.Equal(t, map[string]int{"private-user.100": 4, "private-user.200": 4}, channels)
		assert.Equal(t, map[int]int{4: 2, 3: 2, 2: 2, 1: 2}, offsets)
	})

	t.Run("a second run for the same version emits nothing", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)
		appt := builder.NewAppointmentBuilder().BuildDomain()

		first, err := f.sched.Schedule(ctx, appt, now, false)
		require.NoError(t, err)
		second, err := f.sched.Schedule(ctx, appt, now.Add(10*time.Second), false)
		require.NoError(t, err)

		assert.Equal(t, 8, first)
		assert.Zero(t, second)
	})

	t.Run("rescheduling computes reminders against the new time only", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
		original := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		moved := time.Date(2025, 1, 1, 14, 0, 0, 0, time.UTC)
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)
		appt := builder.NewAppointmentBuilder().WithScheduledFor(original).BuildDomain()

		sent, err := f.sched.Schedule(ctx, appt.WithScheduledFor(moved), now, true)

		require.NoError(t, err)
		assert.Equal(t, 10, sent)
		for _, p := range reminderPayloads(t, *f.sent) {
			assert.True(t, p.IsRescheduled)
			assert.False(t, p.ReminderTime.Before(moved.Add(-5*time.Minute)), "reminder %s not relative to 14:00", p.ReminderTime)
			assert.True(t, p.ReminderTime.Before(moved))
		}

		for _, offset := range appointment.Offsets {
			for _, recipient := range []int64{100, 200} {
				stale, err := f.store.Has(ctx, dispatch.ReminderMarkerKey(appt.ID, appointment.Version(original), offset, recipient))
				require.NoError(t, err)
				assert.False(t, stale, "marker for the original time must not exist")

				fresh, err := f.store.Has(ctx, dispatch.ReminderMarkerKey(appt.ID, appointment.Version(moved), offset, recipient))
				require.NoError(t, err)
				assert.True(t, fresh)
			}
		}
	})

	t.Run("a new version is not blocked by markers of the old one", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 9, 57, 30, 0, time.UTC)
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)
		appt := builder.NewAppointmentBuilder().
			WithScheduledFor(time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)).
			BuildDomain()

		before, err := f.sched.Schedule(ctx, appt, now, false)
		require.NoError(t, err)
		after, err := f.sched.Schedule(ctx, appt.WithScheduledFor(appt.ScheduledFor.Add(time.Minute)), now, true)
		require.NoError(t, err)

		assert.Equal(t, 2*2, before)
		assert.Equal(t, 3*2, after)
	})

	t.Run("missing technician aborts without broadcasting", func(t *testing.T) {
		now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
		f := newReminderFixture(t, now)
		f.dir.EXPECT().TechnicalByID(gomock.Any(), gomock.Any()).Return(nil, shared.ErrNotFound)

		sent, err := f.sched.Schedule(ctx, builder.NewAppointmentBuilder().BuildDomain(), now, false)

		assert.Zero(t, sent)
		assert.True(t, errs.Is(err, dispatch.ErrMissingRelation))
		assert.Empty(t, *f.sent)
	})

	t.Run("marker store failure still emits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := sharedmock.NewMockDirectory(ctrl)
		expectAppointmentParties(dir)
		store := sharedmock.NewMockStore(ctrl)
		store.EXPECT().SetNX(gomock.Any(), gomock.Any(), "1", gomock.Any()).
			Return(false, errors.New("redis: connection refused")).AnyTimes()
		broadcaster := sharedmock.NewMockBroadcaster(ctrl)
		sent := recordPublishes(broadcaster)
		now := time.Date(2025, 1, 1, 10, 3, 30, 0, time.UTC)

		sched := dispatch.NewReminderScheduler(dir, store, broadcaster, clock.NewMockClock(now), testDispatchConfig(), discardLogger())
		n, err := sched.Schedule(ctx, builder.NewAppointmentBuilder().BuildDomain(), now, false)

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, *sent, 2)
	})
}

func TestReminderScheduler_ScanUpcoming(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("only scheduled appointments inside the window", func(t *testing.T) {
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)

		scheduled := *builder.NewAppointmentBuilder().BuildDomain()
		cancelled := *builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = 42 }).
			WithStatus(appointment.StatusCancelled).
			BuildDomain()
		f.dir.EXPECT().ScheduledAppointmentsBetween(gomock.Any(), now, now.Add(6*time.Minute)).
			Return([]appointment.Appointment{scheduled, cancelled}, nil)

		assert.Equal(t, 8, f.sched.ScanUpcoming(ctx))
		for _, p := range reminderPayloads(t, *f.sent) {
			assert.Equal(t, scheduled.ID, p.AppointmentID)
		}
	})

	t.Run("one broken appointment does not stop the rest", func(t *testing.T) {
		f := newReminderFixture(t, now)
		expectAppointmentParties(f.dir)

		orphan := *builder.NewAppointmentBuilder().
			With(func(b *builder.AppointmentBuilder) { b.ID = 43; b.TechnicalID = 99 }).
			BuildDomain()
		ok := *builder.NewAppointmentBuilder().BuildDomain()
		f.dir.EXPECT().TechnicalByID(gomock.Any(), int64(99)).Return(nil, shared.ErrNotFound)
		f.dir.EXPECT().ScheduledAppointmentsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]appointment.Appointment{orphan, ok}, nil)

		assert.Equal(t, 8, f.sched.ScanUpcoming(ctx))
	})

	t.Run("directory failure scans nothing", func(t *testing.T) {
		f := newReminderFixture(t, now)
		f.dir.EXPECT().ScheduledAppointmentsBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("timeout"))

		assert.Zero(t, f.sched.ScanUpcoming(ctx))
	})
}
