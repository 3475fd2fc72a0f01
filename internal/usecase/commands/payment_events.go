package commands

//go:generate mockgen -source=payment_events.go -destination=../../../tests/mock/commands/payment_events_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
)

// Webhook results for metrics and the response body
const (
	WebhookRejected   = "rejected"
	WebhookIgnored    = "ignored"
	WebhookReplayed   = "replayed"
	WebhookReconciled = "reconciled"
	WebhookFailed     = "failed"
)

type WebhookResult struct {
	EventID string
	Result  string
	Outcome fulfillment.Outcome
}

type PaymentEventCommands interface {
	Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type paymentEventUseCaseImpl struct {
	verifier    EventVerifier
	fulfillment FulfillmentCommands
	deduper     EventDeduper
	metrics     Metrics
	logger      *slog.Logger
	timeout     time.Duration
}

func NewPaymentEventUseCase(
	verifier EventVerifier,
	fulfillment FulfillmentCommands,
	deduper EventDeduper,
	metrics Metrics,
	logger *slog.Logger,
	timeout time.Duration,
) PaymentEventCommands {
	return &paymentEventUseCaseImpl{
		verifier:    verifier,
		fulfillment: fulfillment,
		deduper:     deduper,
		metrics:     metrics,
		logger:      logger,
		timeout:     timeout,
	}
}

func (uc *paymentEventUseCaseImpl) Handle(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	evt, err := uc.verifier.Verify(payload, signature)
	if err != nil {
		uc.metrics.ObserveWebhook(WebhookRejected)
		uc.logger.Warn("payment event rejected", "error", err.Error())
		return nil, err
	}

	// The provider may hang up early; a half-finished reconcile is rolled
	// back anyway, so finish it on our own clock.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.timeout)
	defer cancel()

	switch e := evt.(type) {
	case payment.Ignored:
		uc.metrics.ObserveWebhook(WebhookIgnored)
		uc.logger.Debug("payment event ignored", "event_id", e.ID, "type", e.Type)
		return &WebhookResult{EventID: e.ID, Result: WebhookIgnored}, nil

	case payment.PaymentCompleted:
		return uc.handleCompleted(ctx, e)

	default:
		uc.metrics.ObserveWebhook(WebhookRejected)
		return nil, errs.Mark(errs.Newf("unexpected event variant %T", evt), errs.ErrPayloadMalformed)
	}
}

func (uc *paymentEventUseCaseImpl) handleCompleted(ctx context.Context, e payment.PaymentCompleted) (*WebhookResult, error) {
	if e.ID != "" {
		seen, err := uc.deduper.Seen(ctx, e.ID)
		if err != nil {
			uc.logger.Warn("event dedup lookup failed; reconciling anyway", "event_id", e.ID, "error", err.Error())
		}
		if seen {
			uc.metrics.ObserveWebhook(WebhookReplayed)
			return &WebhookResult{EventID: e.ID, Result: WebhookReplayed, Outcome: fulfillment.OutcomeDuplicate}, nil
		}
	}

	res, err := uc.fulfillment.Reconcile(ctx, e)
	if err != nil {
		uc.metrics.ObserveWebhook(WebhookFailed)
		return nil, err
	}

	// Only remembered once the ledger has committed the outcome.
	if e.ID != "" {
		if err := uc.deduper.Remember(ctx, e.ID); err != nil {
			uc.logger.Warn("failed to remember processed event", "event_id", e.ID, "error", err.Error())
		}
	}

	uc.metrics.ObserveWebhook(WebhookReconciled)
	return &WebhookResult{EventID: e.ID, Result: WebhookReconciled, Outcome: res.Outcome}, nil
}
