package bootstrap

import (
	"context"

	"ticketing-notifier/internal/usecase/outbox"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(StartWorker),
)

func StartWorker(lc fx.Lifecycle, worker *outbox.Worker) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			worker.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			worker.Stop()
			cancel()
			return nil
		},
	})
}
