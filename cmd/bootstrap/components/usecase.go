package components

import (
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/jwt"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/queries"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAdminAuthCommands,
		newCatalogCommands,
		commands.NewInventoryUseCase,
		commands.NewAlertUseCase,
		commands.NewCheckoutUseCase,
		newDeliveryCommands,
		newFulfillmentCommands,
		newPaymentEventCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewCodeQueries,
		queries.NewOrderQueries,
		queries.NewAlertQueries,
		queries.NewAnalyticsQueries,
	),
)

func newAdminAuthCommands(cfg config.Config, jwtService *jwt.Service, clk clock.Clock, logger *slog.Logger) commands.AdminAuthCommands {
	return commands.NewAdminAuthCommands(cfg.Admin.User, cfg.Admin.PasswordHash, jwtService, clk, logger)
}

func newCatalogCommands(cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) commands.CatalogCommands {
	return commands.NewCatalogUseCase(uow, cfg.Stripe.Currency, clk, logger)
}

func newDeliveryCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	mailer commands.Mailer,
	metrics commands.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) commands.DeliveryCommands {
	return commands.NewDeliveryUseCase(uow, mailer, metrics, clk, logger, commands.DeliveryOptions{
		MaxAttempts:  cfg.Delivery.MaxAttempts,
		BaseBackoff:  cfg.Delivery.BaseBackoff,
		LeaseTimeout: cfg.Delivery.LeaseTimeout,
		BatchSize:    cfg.Delivery.BatchSize,
	})
}

func newFulfillmentCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	deliverer commands.DeliveryCommands,
	publisher commands.OutcomePublisher,
	metrics commands.Metrics,
	clk clock.Clock,
	logger *slog.Logger,
) commands.FulfillmentCommands {
	return commands.NewFulfillmentUseCase(uow, deliverer, publisher, metrics, clk, logger, commands.FulfillmentOptions{
		AlertEmail:     cfg.Admin.AlertEmail,
		InlineDelivery: cfg.Delivery.Inline,
		SendTimeout:    cfg.Delivery.SendTimeout,
	})
}

func newPaymentEventCommands(
	cfg config.Config,
	verifier commands.EventVerifier,
	fulfillment commands.FulfillmentCommands,
	deduper commands.EventDeduper,
	metrics commands.Metrics,
	logger *slog.Logger,
) commands.PaymentEventCommands {
	return commands.NewPaymentEventUseCase(verifier, fulfillment, deduper, metrics, logger, cfg.Stripe.WebhookTimeout)
}
