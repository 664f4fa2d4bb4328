package components

import (
	"context"

	"storefront-checkout/internal/infra/events"
	"storefront-checkout/internal/infra/metrics"
	"storefront-checkout/internal/infra/repository"
	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseSessionModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		metrics.NewCheckout,
		fx.As(new(shared.CheckoutObserver)),
	),
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		NewLifecycleRecorder,
		NewSessionFactory,
		NewSessionRegistry,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAddressCommands,
		commands.NewCheckoutCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAddressQueries,
		queries.NewCardQueries,
		queries.NewCatalogQueries,
		queries.NewCheckoutQueries,
		queries.NewReservationQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewLifecycleRecorder journals every reservation transition, publishes it
// and counts it.
func NewLifecycleRecorder(journal *repository.Journal, publisher *events.Publisher) shared.LifecycleRecorder {
	return session.FanOut{journal, publisher, metrics.NewRecorder()}
}

func NewSessionFactory(cart shared.CartService, recorder shared.LifecycleRecorder, clk clock.Clock, cfg config.Config) session.Factory {
	return session.NewFactory(cart, recorder, clk, cfg.Checkout)
}

func NewSessionRegistry(lc fx.Lifecycle, factory session.Factory) *session.Registry {
	registry := session.NewRegistry(factory)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			registry.Close()
			return nil
		},
	})
	return registry
}
