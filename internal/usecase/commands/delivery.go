package commands

//go:generate mockgen -source=delivery.go -destination=../../../tests/mock/commands/delivery_mock.go -package=commandsmock

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxDeliveryBackoff = time.Hour

var ErrDeliveryFailed = errs.New("delivery attempt failed")

type DeliveryCommands interface {
	// DeliverJob sends one queued job now. A job that is not queued is
	// reported as skipped.
	DeliverJob(ctx context.Context, jobID uuid.UUID) (delivery.Status, error)
	// DispatchDue sends a batch of due jobs and returns how many were tried.
	DispatchDue(ctx context.Context) (int, error)
}

type DeliveryOptions struct {
	MaxAttempts  int
	BaseBackoff  time.Duration
	LeaseTimeout time.Duration
	BatchSize    int
}

type deliveryUseCaseImpl struct {
	uow     shared.UnitOfWork
	mailer  Mailer
	metrics Metrics
	clock   clock.Clock
	logger  *slog.Logger
	opts    DeliveryOptions
}

func NewDeliveryUseCase(uow shared.UnitOfWork, mailer Mailer, metrics Metrics, clk clock.Clock, logger *slog.Logger, opts DeliveryOptions) DeliveryCommands {
	return &deliveryUseCaseImpl{
		uow:     uow,
		mailer:  mailer,
		metrics: metrics,
		clock:   clk,
		logger:  logger,
		opts:    opts,
	}
}

func (uc *deliveryUseCaseImpl) DeliverJob(ctx context.Context, jobID uuid.UUID) (delivery.Status, error) {
	var job *shared.NotificationJob
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		job, derr = tx.Notifications().ClaimByID(ctx, tx.DB(), jobID, uc.clock.Now())
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return delivery.StatusSkipped, nil
		}
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return uc.process(ctx, job)
}

func (uc *deliveryUseCaseImpl) DispatchDue(ctx context.Context) (int, error) {
	var jobs []*shared.NotificationJob
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		jobs, derr = tx.Notifications().ClaimDue(ctx, tx.DB(), uc.clock.Now(), uc.opts.LeaseTimeout, uc.opts.BatchSize)
		return derr
	})
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			// Leased jobs come back after LeaseTimeout.
			return 0, ctx.Err()
		}
		if _, err := uc.process(ctx, job); err != nil {
			uc.logger.Warn("delivery job attempt failed",
				"job_id", job.ID.String(),
				"attempts", job.Attempts,
				"error", err.Error())
		}
	}

	return len(jobs), nil
}

// process sends a job already leased to this worker and records the result.
func (uc *deliveryUseCaseImpl) process(ctx context.Context, job *shared.NotificationJob) (delivery.Status, error) {
	ctx, span := tracer.Start(ctx, "delivery.send", trace.WithAttributes(
		attribute.String("delivery.job_id", job.ID.String()),
		attribute.String("delivery.kind", job.Kind),
		attribute.Int("delivery.attempt", job.Attempts),
	))
	defer span.End()

	var msg delivery.Message
	if err := json.Unmarshal(job.Payload, &msg); err != nil {
		return uc.fail(ctx, span, job, errs.Wrap(err, "undecodable job payload"), true)
	}
	if err := msg.Validate(); err != nil {
		return uc.fail(ctx, span, job, err, true)
	}

	if err := uc.mailer.Send(ctx, msg); err != nil {
		return uc.fail(ctx, span, job, err, false)
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, uc.clock.Now())
	})
	if err != nil {
		// The message went out; a lease expiry may send it once more.
		span.RecordError(err)
		return delivery.StatusSent, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.ObserveDelivery(job.Kind, delivery.StatusSent)
	uc.logger.Info("delivery sent", "job_id", job.ID.String(), "kind", job.Kind, "session_id", job.Topic)
	return delivery.StatusSent, nil
}

func (uc *deliveryUseCaseImpl) fail(ctx context.Context, span trace.Span, job *shared.NotificationJob, cause error, permanent bool) (delivery.Status, error) {
	span.RecordError(cause)
	span.SetStatus(codes.Error, "delivery failed")

	now := uc.clock.Now()
	status := delivery.StatusRetrying
	if permanent || job.Attempts >= uc.opts.MaxAttempts {
		status = delivery.StatusFailed
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if status == delivery.StatusRetrying {
			runAt := now.Add(uc.backoff(job.Attempts))
			return tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, runAt, cause.Error())
		}

		if derr := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, cause.Error(), now); derr != nil {
			return derr
		}
		alert := fulfillment.NewAlert(fulfillment.AlertDeliveryFailed, job.Topic, job.OrderID, nil,
			fmt.Sprintf("%s delivery gave up after %d attempt(s): %s", job.Kind, job.Attempts, cause.Error()), now)
		_, derr := tx.Alerts().Create(ctx, tx.DB(), alert)
		return derr
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.ObserveDelivery(job.Kind, status)
	if status == delivery.StatusFailed {
		uc.logger.Error("delivery failed permanently",
			"job_id", job.ID.String(),
			"session_id", job.Topic,
			"attempts", job.Attempts,
			"error", cause.Error())
	}

	return status, errs.Mark(cause, ErrDeliveryFailed)
}

func (uc *deliveryUseCaseImpl) backoff(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	d := uc.opts.BaseBackoff
	for i := 1; i < attempts; i++ {
		d *= 2
		if d >= maxDeliveryBackoff {
			return maxDeliveryBackoff
		}
	}
	return d
}
