package bootstrap

import (
	"context"
	"log/slog"

	"storefront-checkout/internal/infra/events"
	"storefront-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
	),
)

func NewPublisher(lc fx.Lifecycle, cfg config.Config) *events.Publisher {
	p := events.NewPublisher(cfg.Kafka)
	if !p.Enabled() {
		slog.Info("kafka brokers not configured, lifecycle events are not published")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
