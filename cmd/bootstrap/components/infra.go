package components

import (
	"context"
	"log/slog"

	"ticketing-notifier/internal/handler/api"
	"ticketing-notifier/internal/infra/mail"
	"ticketing-notifier/internal/infra/push"
	"ticketing-notifier/internal/infra/realtime"
	"ticketing-notifier/internal/infra/repository"
	"ticketing-notifier/internal/pkg/config"
	"ticketing-notifier/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	repositoryModule,
	transportModule,
)

var repositoryModule = fx.Module("infra/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewDirectoryRepository,
			fx.As(new(shared.Directory)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationStore)),
		),
		fx.Annotate(
			repository.NewOutboxRepository,
			fx.As(new(shared.OutboxQueue)),
		),
	),
)

var transportModule = fx.Module("infra/transport",
	fx.Provide(
		NewRedisBroadcaster,
		func(b *realtime.RedisBroadcaster) shared.Broadcaster { return b },
		func(b *realtime.RedisBroadcaster) api.NotificationFeed { return b },
		NewPushTransport,
		NewMailer,
	),
)

func NewRedisBroadcaster(client *redis.Client, cfg config.Config) *realtime.RedisBroadcaster {
	return realtime.NewRedisBroadcaster(client, cfg.Realtime)
}

func NewPushTransport(cfg config.Config, logger *slog.Logger) (shared.PushTransport, error) {
	if cfg.Push.Driver != "sns" {
		return push.NewLogTransport(logger), nil
	}
	client, err := push.NewSNSClient(context.Background(), cfg.Push)
	if err != nil {
		return nil, err
	}
	return push.NewSNSTransport(client, cfg.Push, logger), nil
}

func NewMailer(cfg config.Config, logger *slog.Logger) (shared.Mailer, error) {
	if cfg.Mail.Driver != "ses" {
		return mail.NewLogMailer(logger), nil
	}
	client, err := mail.NewSESClient(context.Background(), cfg.Mail)
	if err != nil {
		return nil, err
	}
	return mail.NewSESMailer(client, cfg.Mail), nil
}
