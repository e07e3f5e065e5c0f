//go:build unit

package dispatch_test

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"time"

	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/tests/common/builder"
	sharedmock "ticketing-notifier/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var baseTime = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDispatchConfig() config.DispatchConfig {
	return config.NewTestConfig().Dispatch
}

type published struct {
	channel string
	event   string
	payload any
}

// recordPublishes makes the mock broadcaster behave like the real channel naming and keeps every publish.
func recordPublishes(b *sharedmock.MockBroadcaster) *[]published {
	var out []published
	b.EXPECT().ChannelKeyForUser(gomock.Any()).DoAndReturn(func(id int64) string {
		return "private-user." + strconv.FormatInt(id, 10)
	}).AnyTimes()
	b.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, channel, event string, payload any) error {
			out = append(out, published{channel: channel, event: event, payload: payload})
			return nil
		}).AnyTimes()
	return &out
}

// expectAppointmentParties wires technician 3 (user 200) and ticket 12 (member user 100).
func expectAppointmentParties(dir *sharedmock.MockDirectory) {
	tech := builder.NewUserBuilder().WithID(200).AsTechnical()
	dir.EXPECT().TechnicalByID(gomock.Any(), builder.DefaultTechnicalID).
		Return(tech.BuildTechnical(builder.DefaultTechnicalID), nil).AnyTimes()
	dir.EXPECT().UserByID(gomock.Any(), int64(200)).Return(tech.BuildDomain(), nil).AnyTimes()
	dir.EXPECT().TicketContext(gomock.Any(), builder.DefaultTicketID).
		Return(builder.NewTicketContextBuilder().BuildDomain(), nil).AnyTimes()
}
