package commands

//go:generate mockgen -source=fulfillment.go -destination=../../../tests/mock/commands/fulfillment_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/ptr"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotRetryable     = errs.New("order is not waiting for restock")
	ErrNotFulfilled     = errs.New("order has not been fulfilled")
	ErrNoRecipient      = errs.New("no delivery address for order")
	errConcurrentUpdate = errs.New("order changed while locked")
)

var tracer = otel.Tracer("wassce-checker/usecase/commands")

type ReconcileResult struct {
	Outcome       fulfillment.Outcome
	OrderID       *uuid.UUID
	ProductID     *uuid.UUID
	CodeID        *uuid.UUID
	DeliveryJobID *uuid.UUID
	Recipient     string

	alertJobID *uuid.UUID
}

type ResendResult struct {
	DeliveryJobID uuid.UUID
	Recipient     string
	Status        delivery.Status
}

type FulfillmentCommands interface {
	// Reconcile turns a verified payment confirmation into at most one
	// claimed code. Replays of the same session are harmless.
	Reconcile(ctx context.Context, evt payment.PaymentCompleted) (*ReconcileResult, error)
	// RetryFulfillment re-runs the claim for an order that hit a stockout.
	RetryFulfillment(ctx context.Context, sessionID string) (*ReconcileResult, error)
	// ResendCode queues another delivery of the code already bound to the order.
	ResendCode(ctx context.Context, sessionID, email string) (*ResendResult, error)
}

type FulfillmentOptions struct {
	AlertEmail     string
	InlineDelivery bool
	SendTimeout    time.Duration
}

type fulfillmentUseCaseImpl struct {
	uow       shared.UnitOfWork
	deliverer DeliveryCommands
	publisher OutcomePublisher
	metrics   Metrics
	clock     clock.Clock
	logger    *slog.Logger
	opts      FulfillmentOptions
}

func NewFulfillmentUseCase(
	uow shared.UnitOfWork,
	deliverer DeliveryCommands,
	publisher OutcomePublisher,
	metrics Metrics,
	clk clock.Clock,
	logger *slog.Logger,
	opts FulfillmentOptions,
) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		uow:       uow,
		deliverer: deliverer,
		publisher: publisher,
		metrics:   metrics,
		clock:     clk,
		logger:    logger,
		opts:      opts,
	}
}

type reconcileInput struct {
	eventID       string
	sessionID     string
	productID     string
	emails        []string
	operatorRetry bool
}

func (uc *fulfillmentUseCaseImpl) Reconcile(ctx context.Context, evt payment.PaymentCompleted) (*ReconcileResult, error) {
	return uc.reconcile(ctx, reconcileInput{
		eventID:   evt.ID,
		sessionID: evt.SessionID,
		productID: evt.ProductID,
		emails:    []string{evt.BuyerEmail, evt.CustomerEmail},
	})
}

func (uc *fulfillmentUseCaseImpl) RetryFulfillment(ctx context.Context, sessionID string) (*ReconcileResult, error) {
	o, err := uc.uow.CommandReads().OrderBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !o.Fulfilled() && !o.AwaitingRestock() {
		return nil, ErrNotRetryable
	}

	return uc.reconcile(ctx, reconcileInput{
		eventID:       "operator-retry",
		sessionID:     sessionID,
		operatorRetry: true,
	})
}

func (uc *fulfillmentUseCaseImpl) reconcile(ctx context.Context, in reconcileInput) (*ReconcileResult, error) {
	ctx, span := tracer.Start(ctx, "fulfillment.reconcile", trace.WithAttributes(
		attribute.String("payment.session_id", in.sessionID),
		attribute.String("payment.event_id", in.eventID),
		attribute.Bool("fulfillment.operator_retry", in.operatorRetry),
	))
	defer span.End()

	started := uc.clock.Now()
	logger := uc.logger.With("session_id", in.sessionID, "event_id", in.eventID)

	var res *ReconcileResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Reset on every attempt; the unit of work may retry this closure.
		res = &ReconcileResult{}
		return uc.reconcileInTx(ctx, tx, in, res, logger)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "reconcile failed")
		logger.Error("fulfillment reconciliation failed", "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	span.SetAttributes(attribute.String("fulfillment.outcome", res.Outcome.String()))
	uc.metrics.ObserveReconcile(res.Outcome, uc.clock.Now().Sub(started))
	uc.publisher.PublishOutcome(ctx, OutcomeRecord{
		EventID:   in.eventID,
		SessionID: in.sessionID,
		OrderID:   res.OrderID,
		ProductID: res.ProductID,
		Outcome:   res.Outcome,
		At:        uc.clock.Now(),
	})

	logAttrs := []any{"outcome", res.Outcome.String()}
	if res.OrderID != nil {
		logAttrs = append(logAttrs, "order_id", res.OrderID.String())
	}
	switch res.Outcome {
	case fulfillment.OutcomeUnknownSession:
		logger.Warn("payment confirmation for unknown session", logAttrs...)
	case fulfillment.OutcomeStockout, fulfillment.OutcomeStockoutPending:
		logger.Error("paid order could not be fulfilled: out of stock", logAttrs...)
	default:
		logger.Info("payment confirmation reconciled", logAttrs...)
	}

	if res.DeliveryJobID != nil {
		uc.deliverAfterCommit(ctx, *res.DeliveryJobID)
	}
	if res.alertJobID != nil {
		uc.deliverAfterCommit(ctx, *res.alertJobID)
	}

	return res, nil
}

func (uc *fulfillmentUseCaseImpl) reconcileInTx(ctx context.Context, tx shared.Tx, in reconcileInput, res *ReconcileResult, logger *slog.Logger) error {
	o, err := tx.Orders().FindBySessionIDForUpdate(ctx, tx.DB(), in.sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			res.Outcome = fulfillment.OutcomeUnknownSession
			return nil
		}
		return err
	}
	res.OrderID = ptr.To(o.ID())
	res.ProductID = ptr.To(o.ProductID())

	if o.Fulfilled() {
		res.Outcome = fulfillment.OutcomeDuplicate
		return nil
	}
	if o.AwaitingRestock() && !in.operatorRetry {
		res.Outcome = fulfillment.OutcomeStockoutPending
		return nil
	}

	// The order row is authoritative for what was sold.
	if in.productID != "" && in.productID != o.ProductID().String() {
		logger.Warn("event product does not match order product",
			"event_product_id", in.productID,
			"order_product_id", o.ProductID().String())
	}

	recipient := order.ResolveRecipient(append(in.emails, o.BuyerEmail())...)
	res.Recipient = recipient
	now := uc.clock.Now()

	code, err := tx.Codes().ClaimUnused(ctx, tx.DB(), o.ProductID(), o.ID(), recipient, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			res.Outcome = fulfillment.OutcomeStockout
			res.alertJobID, err = uc.recordStockout(ctx, tx, o, now)
			return err
		}
		return err
	}
	res.CodeID = ptr.To(code.ID)

	marked, err := tx.Orders().MarkFulfilled(ctx, tx.DB(), o.ID(), recipient, now)
	if err != nil {
		return err
	}
	if !marked {
		return errConcurrentUpdate
	}
	res.Outcome = fulfillment.OutcomeFulfilled

	if recipient == "" {
		alert := fulfillment.NewAlert(fulfillment.AlertMissingRecipient, o.SessionID(), res.OrderID, res.ProductID,
			"order fulfilled but no buyer email is known; send the code manually", now)
		_, err = tx.Alerts().Create(ctx, tx.DB(), alert)
		return err
	}

	jobID, err := uc.queueCodeDelivery(ctx, tx, o, code, recipient, now)
	if err != nil {
		return err
	}
	res.DeliveryJobID = &jobID
	return nil
}

// recordStockout raises the alert only the first time this order runs dry.
// It returns the operator email job, if one was queued.
func (uc *fulfillmentUseCaseImpl) recordStockout(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) (*uuid.UUID, error) {
	if err := tx.Orders().MarkStockout(ctx, tx.DB(), o.ID(), now); err != nil {
		return nil, err
	}
	if o.StockoutAt() != nil {
		return nil, nil
	}

	productName := o.ProductID().String()
	if p, err := tx.Reads().ProductByID(ctx, o.ProductID()); err == nil {
		productName = p.Name
	}

	alert := fulfillment.NewAlert(fulfillment.AlertStockout, o.SessionID(), ptr.To(o.ID()), ptr.To(o.ProductID()),
		"paid order has no unused code; upload codes and retry fulfillment", now)
	if _, err := tx.Alerts().Create(ctx, tx.DB(), alert); err != nil {
		return nil, err
	}

	if uc.opts.AlertEmail == "" {
		return nil, nil
	}
	msg := delivery.StockoutAlertMessage(uc.opts.AlertEmail, o.SessionID(), productName)
	jobID, err := uc.createJob(ctx, tx, delivery.KindOperatorAlert, o, msg, now)
	if err != nil {
		return nil, err
	}
	return &jobID, nil
}

func (uc *fulfillmentUseCaseImpl) queueCodeDelivery(ctx context.Context, tx shared.Tx, o *order.Order, code *inventory.Code, recipient string, now time.Time) (uuid.UUID, error) {
	productName := ""
	if p, err := tx.Reads().ProductByID(ctx, o.ProductID()); err == nil {
		productName = p.Name
	}
	msg := delivery.CodeMessage(recipient, code.Value, productName)
	return uc.createJob(ctx, tx, delivery.KindCodeDelivery, o, msg, now)
}

func (uc *fulfillmentUseCaseImpl) createJob(ctx context.Context, tx shared.Tx, kind string, o *order.Order, msg delivery.Message, now time.Time) (uuid.UUID, error) {
	payload, err := json.Marshal(msg)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to encode delivery message")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), shared.NotificationJob{
		Kind:    kind,
		Topic:   o.SessionID(),
		Payload: payload,
		RunAt:   now,
		OrderID: ptr.To(o.ID()),
	})
}

// deliverAfterCommit sends inline so the buyer usually gets the code before
// the provider's redirect lands. The send stays within the caller's deadline;
// anything not sent by then is left queued for the dispatcher.
func (uc *fulfillmentUseCaseImpl) deliverAfterCommit(ctx context.Context, jobID uuid.UUID) {
	if !uc.opts.InlineDelivery {
		return
	}
	if ctx.Err() != nil {
		uc.logger.Info("no time left for inline delivery; left for dispatcher", "job_id", jobID.String())
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, uc.opts.SendTimeout)
	defer cancel()

	status, err := uc.deliverer.DeliverJob(sendCtx, jobID)
	if err != nil {
		uc.logger.Warn("inline delivery failed; left for dispatcher",
			"job_id", jobID.String(),
			"error", err.Error())
		return
	}
	uc.logger.Debug("inline delivery finished", "job_id", jobID.String(), "status", status.String())
}

func (uc *fulfillmentUseCaseImpl) ResendCode(ctx context.Context, sessionID, email string) (*ResendResult, error) {
	override, err := order.NormalizeEmail(email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var res *ResendResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, derr := tx.Orders().FindBySessionIDForUpdate(ctx, tx.DB(), sessionID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrOrderNotFound
			}
			return derr
		}
		if !o.Fulfilled() {
			return ErrNotFulfilled
		}

		code, derr := tx.Reads().ClaimedCodeByOrder(ctx, o.ID())
		if derr != nil {
			return derr
		}

		recipient := order.ResolveRecipient(override, o.BuyerEmail())
		if recipient == "" {
			return ErrNoRecipient
		}

		jobID, derr := uc.queueCodeDelivery(ctx, tx, o, code, recipient, uc.clock.Now())
		if derr != nil {
			return derr
		}
		res = &ResendResult{DeliveryJobID: jobID, Recipient: recipient}
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) || errs.Is(err, ErrNotFulfilled) || errs.Is(err, ErrNoRecipient) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.logger.Info("code delivery re-queued", "session_id", sessionID, "job_id", res.DeliveryJobID.String())

	// Operator-initiated, so report the attempt rather than fire and forget.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.opts.SendTimeout)
	defer cancel()
	res.Status, err = uc.deliverer.DeliverJob(sendCtx, res.DeliveryJobID)
	if err != nil {
		uc.logger.Warn("resend attempt failed; left for dispatcher", "job_id", res.DeliveryJobID.String(), "error", err.Error())
		res.Status = delivery.StatusRetrying
	}
	return res, nil
}
