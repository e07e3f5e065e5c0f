package components

import (
	"ticketing-notifier/internal/pkg/clock"
	"ticketing-notifier/internal/usecase/dispatch"
	"ticketing-notifier/internal/usecase/outbox"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseDispatchModule,
	usecaseOutboxModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseDispatchModule = fx.Module("usecase/dispatch",
	fx.Provide(
		dispatch.NewDedupGate,
		dispatch.NewPushBuilder,
		dispatch.NewPusher,
		dispatch.NewReminderScheduler,
		dispatch.NewPollGuard,
		dispatch.NewHandlers,
		dispatch.NewRouter,
	),
)

var usecaseOutboxModule = fx.Module("usecase/outbox",
	fx.Provide(
		fx.Annotate(
			func(r *dispatch.Router) *dispatch.Router { return r },
			fx.As(new(outbox.Dispatcher)),
		),
		fx.Annotate(
			func(g dispatch.PollGuard) dispatch.PollGuard { return g },
			fx.As(new(outbox.ReminderTrigger)),
		),
		outbox.NewWorker,
	),
)
