package bootstrap

import (
	"ticketing-notifier/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
