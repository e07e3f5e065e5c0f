package components

import (
	"ticketing-notifier/internal/handler"
	"ticketing-notifier/internal/handler/api"
	"ticketing-notifier/internal/usecase/dispatch"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		fx.Annotate(
			func(r *dispatch.Router) *dispatch.Router { return r },
			fx.As(new(api.EventDispatcher)),
		),
		api.NewEventHandler,
		api.NewRealtimeHandler,
	),
	fx.Invoke(handler.NewRouter),
)
