package bootstrap

import (
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/payment/stripe"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewEventVerifier,
		NewSessionCreator,
	),
)

func NewEventVerifier(cfg config.Config, logger *slog.Logger) commands.EventVerifier {
	if cfg.Stripe.WebhookSecret == "" {
		// config.Validate only lets this through with STRIPE_ALLOW_UNSIGNED outside production
		logger.Warn("STRIPE_WEBHOOK_SECRET is empty, webhook signatures are NOT verified")
	}
	return stripe.NewVerifier(cfg.Stripe.WebhookSecret, cfg.Stripe.SignatureTolerance, logger)
}

func NewSessionCreator(cfg config.Config, logger *slog.Logger) commands.SessionCreator {
	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY is empty, checkout is disabled")
	}
	return stripe.NewSessionCreator(stripe.CheckoutConfig{
		SecretKey:  cfg.Stripe.SecretKey,
		SuccessURL: cfg.Stripe.SuccessURL,
		CancelURL:  cfg.Stripe.CancelURL,
	}, logger)
}
