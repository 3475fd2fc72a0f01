//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"
	commandsmock "github.com/fredricksonsuccess129-spec/wassce-checker-site/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FulfillmentTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	f         *txFixture
	deliverer *commandsmock.MockDeliveryCommands
	publisher *commandsmock.MockOutcomePublisher
	metrics   *commandsmock.MockMetrics
	uc        commands.FulfillmentCommands

	productID uuid.UUID
}

func (s *FulfillmentTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newTxFixture(s.ctrl)
	s.deliverer = commandsmock.NewMockDeliveryCommands(s.ctrl)
	s.publisher = commandsmock.NewMockOutcomePublisher(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)
	s.productID = uuid.New()

	s.uc = s.newUseCase(commands.FulfillmentOptions{
		AlertEmail:     "ops@example.com",
		InlineDelivery: true,
		SendTimeout:    time.Second,
	})
}

func (s *FulfillmentTestSuite) newUseCase(opts commands.FulfillmentOptions) commands.FulfillmentCommands {
	return commands.NewFulfillmentUseCase(s.f.uow, s.deliverer, s.publisher, s.metrics, clock.NewMockClock(testNow), discardLogger(), opts)
}

func (s *FulfillmentTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestFulfillmentTestSuite(t *testing.T) {
	suite.Run(t, new(FulfillmentTestSuite))
}

func (s *FulfillmentTestSuite) pendingOrder(sessionID, buyerEmail string) *order.Order {
	return order.Reconstruct(uuid.New(), sessionID, s.productID, 2500, "ghs", buyerEmail, false, nil, nil, testNow.Add(-time.Minute))
}

func (s *FulfillmentTestSuite) completed(sessionID string) payment.PaymentCompleted {
	return payment.PaymentCompleted{
		ID:            "evt_" + sessionID,
		SessionID:     sessionID,
		ProductID:     s.productID.String(),
		BuyerEmail:    "buyer@example.com",
		CustomerEmail: "stripe@example.com",
	}
}

func (s *FulfillmentTestSuite) expectObserved(outcome fulfillment.Outcome) {
	s.metrics.EXPECT().ObserveReconcile(outcome, gomock.Any()).Times(1)
	s.publisher.EXPECT().PublishOutcome(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, rec commands.OutcomeRecord) {
			s.Equal(outcome, rec.Outcome)
		}).Times(1)
}

func notFound() error {
	return infra.NewRepoErr(infra.KindNotFound, "not found")
}

// ================================================================================
// Reconcile
// ================================================================================

func (s *FulfillmentTestSuite) TestReconcile_Fulfilled() {
	o := s.pendingOrder("cs_paid", "")
	code := &inventory.Code{ID: uuid.New(), ProductID: s.productID, Value: "PIN-0001"}
	jobID := uuid.New()

	gomock.InOrder(
		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_paid").Return(o, nil),
		s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), s.productID, o.ID(), "buyer@example.com", testNow).Return(code, nil),
		s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), o.ID(), "buyer@example.com", testNow).Return(true, nil),
	)
	s.f.reads.EXPECT().ProductByID(gomock.Any(), s.productID).Return(&shared.ProductSnapshot{ID: s.productID, Name: "WASSCE Checker"}, nil)
	s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
			s.Equal(delivery.KindCodeDelivery, job.Kind)
			s.Equal("cs_paid", job.Topic)
			var msg delivery.Message
			s.Require().NoError(json.Unmarshal(job.Payload, &msg))
			s.Equal("buyer@example.com", msg.To)
			s.Contains(msg.Text, "PIN-0001")
			s.Contains(msg.HTML, "PIN-0001")
			return jobID, nil
		})
	s.expectObserved(fulfillment.OutcomeFulfilled)
	// Delivery only after the transaction returned.
	s.deliverer.EXPECT().DeliverJob(gomock.Any(), jobID).Return(delivery.StatusSent, nil).Times(1)

	res, err := s.uc.Reconcile(context.Background(), s.completed("cs_paid"))

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
	s.Equal(code.ID, *res.CodeID)
	s.Equal(jobID, *res.DeliveryJobID)
	s.Equal("buyer@example.com", res.Recipient)
}

func (s *FulfillmentTestSuite) TestReconcile_RecipientFallsBackToProviderEmail() {
	o := s.pendingOrder("cs_fallback", "")
	evt := s.completed("cs_fallback")
	evt.BuyerEmail = ""

	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_fallback").Return(o, nil)
	s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), s.productID, o.ID(), "stripe@example.com", testNow).
		Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
	s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), o.ID(), "stripe@example.com", testNow).Return(true, nil)
	s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(nil, notFound())
	s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.expectObserved(fulfillment.OutcomeFulfilled)
	s.deliverer.EXPECT().DeliverJob(gomock.Any(), gomock.Any()).Return(delivery.StatusSent, nil)

	res, err := s.uc.Reconcile(context.Background(), evt)

	s.Require().NoError(err)
	s.Equal("stripe@example.com", res.Recipient)
}

func (s *FulfillmentTestSuite) TestReconcile_AlreadyFulfilledShortCircuits() {
	at := testNow.Add(-time.Hour)
	o := order.Reconstruct(uuid.New(), "cs_done", s.productID, 2500, "ghs", "buyer@example.com", true, &at, nil, at)

	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_done").Return(o, nil)
	s.expectObserved(fulfillment.OutcomeDuplicate)
	// No claim, no job and no delivery: the strict mocks fail on any of them.

	res, err := s.uc.Reconcile(context.Background(), s.completed("cs_done"))

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeDuplicate, res.Outcome)
	s.Nil(res.CodeID)
	s.Nil(res.DeliveryJobID)
}

func (s *FulfillmentTestSuite) TestReconcile_UnknownSessionIsLogOnly() {
	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_nobody").Return(nil, notFound())
	s.expectObserved(fulfillment.OutcomeUnknownSession)

	res, err := s.uc.Reconcile(context.Background(), s.completed("cs_nobody"))

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeUnknownSession, res.Outcome)
	s.Nil(res.OrderID)
}

func (s *FulfillmentTestSuite) TestReconcile_StockoutRaisesAlertOnce() {
	s.Run("first stockout alerts and emails the operator", func() {
		o := s.pendingOrder("cs_dry", "buyer@example.com")

		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_dry").Return(o, nil)
		s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound())
		s.f.orders.EXPECT().MarkStockout(gomock.Any(), gomock.Any(), o.ID(), testNow).Return(nil)
		s.f.reads.EXPECT().ProductByID(gomock.Any(), s.productID).Return(&shared.ProductSnapshot{Name: "WASSCE Checker"}, nil)
		s.f.alerts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, a fulfillment.Alert) (uuid.UUID, error) {
				s.Equal(fulfillment.AlertStockout, a.Kind)
				s.Equal("cs_dry", a.SessionID)
				return uuid.New(), nil
			})
		alertJobID := uuid.New()
		s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
				s.Equal(delivery.KindOperatorAlert, job.Kind)
				var msg delivery.Message
				s.Require().NoError(json.Unmarshal(job.Payload, &msg))
				s.Equal("ops@example.com", msg.To)
				return alertJobID, nil
			})
		s.expectObserved(fulfillment.OutcomeStockout)
		s.deliverer.EXPECT().DeliverJob(gomock.Any(), alertJobID).Return(delivery.StatusSent, nil)

		res, err := s.uc.Reconcile(context.Background(), s.completed("cs_dry"))

		s.Require().NoError(err)
		s.Equal(fulfillment.OutcomeStockout, res.Outcome)
		s.Nil(res.DeliveryJobID)
	})

	s.Run("redelivery of a dry order does not alert again", func() {
		dry := testNow.Add(-time.Minute)
		o := order.Reconstruct(uuid.New(), "cs_dry2", s.productID, 2500, "ghs", "", false, nil, &dry, dry)

		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_dry2").Return(o, nil)
		s.expectObserved(fulfillment.OutcomeStockoutPending)

		res, err := s.uc.Reconcile(context.Background(), s.completed("cs_dry2"))

		s.Require().NoError(err)
		s.Equal(fulfillment.OutcomeStockoutPending, res.Outcome)
	})
}

func (s *FulfillmentTestSuite) TestReconcile_NoRecipientAlertsInsteadOfQueueing() {
	o := s.pendingOrder("cs_anon", "")
	evt := s.completed("cs_anon")
	evt.BuyerEmail, evt.CustomerEmail = "", ""

	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_anon").Return(o, nil)
	s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), s.productID, o.ID(), "", testNow).
		Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
	s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), o.ID(), "", testNow).Return(true, nil)
	s.f.alerts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, a fulfillment.Alert) (uuid.UUID, error) {
			s.Equal(fulfillment.AlertMissingRecipient, a.Kind)
			return uuid.New(), nil
		})
	s.expectObserved(fulfillment.OutcomeFulfilled)

	res, err := s.uc.Reconcile(context.Background(), evt)

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
	s.Nil(res.DeliveryJobID)
}

func (s *FulfillmentTestSuite) TestReconcile_StorageFailureBeforeCommit() {
	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_err").
		Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection refused"))

	res, err := s.uc.Reconcile(context.Background(), s.completed("cs_err"))

	s.Nil(res)
	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *FulfillmentTestSuite) TestReconcile_InlineDeliveryFailureStillSucceeds() {
	o := s.pendingOrder("cs_smtp", "buyer@example.com")

	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(o, nil)
	s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
	s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
	s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.expectObserved(fulfillment.OutcomeFulfilled)
	s.deliverer.EXPECT().DeliverJob(gomock.Any(), gomock.Any()).Return(delivery.StatusRetrying, commands.ErrDeliveryFailed)

	res, err := s.uc.Reconcile(context.Background(), s.completed("cs_smtp"))

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
}

func (s *FulfillmentTestSuite) expectFulfilledFlow(sessionID string, jobID uuid.UUID) {
	o := s.pendingOrder(sessionID, "buyer@example.com")
	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), sessionID).Return(o, nil)
	s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
	s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
	s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(jobID, nil)
	s.expectObserved(fulfillment.OutcomeFulfilled)
}

func (s *FulfillmentTestSuite) TestReconcile_InlineDeliveryHonoursCallerDeadline() {
	uc := s.newUseCase(commands.FulfillmentOptions{InlineDelivery: true, SendTimeout: time.Hour})

	s.Run("send is bounded by the caller deadline, not the send timeout", func() {
		jobID := uuid.New()
		s.expectFulfilledFlow("cs_deadline", jobID)

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		parent, _ := ctx.Deadline()

		s.deliverer.EXPECT().DeliverJob(gomock.Any(), jobID).
			DoAndReturn(func(sendCtx context.Context, _ uuid.UUID) (delivery.Status, error) {
				got, ok := sendCtx.Deadline()
				s.Require().True(ok)
				s.False(got.After(parent))
				return delivery.StatusSent, nil
			})

		res, err := uc.Reconcile(ctx, s.completed("cs_deadline"))

		s.Require().NoError(err)
		s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
	})

	s.Run("expired caller leaves the job queued", func() {
		s.expectFulfilledFlow("cs_expired", uuid.New())
		s.deliverer.EXPECT().DeliverJob(gomock.Any(), gomock.Any()).Times(0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := uc.Reconcile(ctx, s.completed("cs_expired"))

		s.Require().NoError(err)
		s.NotNil(res.DeliveryJobID)
	})
}

func (s *FulfillmentTestSuite) TestReconcile_QueuedOnlyWhenInlineDisabled() {
	uc := s.newUseCase(commands.FulfillmentOptions{InlineDelivery: false, SendTimeout: time.Second})
	o := s.pendingOrder("cs_queue", "buyer@example.com")

	s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(o, nil)
	s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
	s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
	s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.expectObserved(fulfillment.OutcomeFulfilled)

	res, err := uc.Reconcile(context.Background(), s.completed("cs_queue"))

	s.Require().NoError(err)
	s.NotNil(res.DeliveryJobID)
}

// ================================================================================
// RetryFulfillment
// ================================================================================

func (s *FulfillmentTestSuite) TestRetryFulfillment() {
	s.Run("claims for an order awaiting restock", func() {
		dry := testNow.Add(-time.Hour)
		o := order.Reconstruct(uuid.New(), "cs_restock", s.productID, 2500, "ghs", "buyer@example.com", false, nil, &dry, dry)

		s.f.reads.EXPECT().OrderBySessionID(gomock.Any(), "cs_restock").Return(o, nil)
		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_restock").Return(o, nil)
		s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), s.productID, o.ID(), "buyer@example.com", testNow).
			Return(&inventory.Code{ID: uuid.New(), Value: "PIN"}, nil)
		s.f.orders.EXPECT().MarkFulfilled(gomock.Any(), gomock.Any(), o.ID(), "buyer@example.com", testNow).Return(true, nil)
		s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
		s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.expectObserved(fulfillment.OutcomeFulfilled)
		s.deliverer.EXPECT().DeliverJob(gomock.Any(), gomock.Any()).Return(delivery.StatusSent, nil)

		res, err := s.uc.RetryFulfillment(context.Background(), "cs_restock")

		s.Require().NoError(err)
		s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
	})

	s.Run("still dry keeps the order waiting without a second alert", func() {
		dry := testNow.Add(-time.Hour)
		o := order.Reconstruct(uuid.New(), "cs_still_dry", s.productID, 2500, "ghs", "", false, nil, &dry, dry)

		s.f.reads.EXPECT().OrderBySessionID(gomock.Any(), "cs_still_dry").Return(o, nil)
		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_still_dry").Return(o, nil)
		s.f.codes.EXPECT().ClaimUnused(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, notFound())
		s.f.orders.EXPECT().MarkStockout(gomock.Any(), gomock.Any(), o.ID(), testNow).Return(nil)
		s.expectObserved(fulfillment.OutcomeStockout)

		res, err := s.uc.RetryFulfillment(context.Background(), "cs_still_dry")

		s.Require().NoError(err)
		s.Equal(fulfillment.OutcomeStockout, res.Outcome)
	})

	s.Run("rejects orders that never ran dry", func() {
		s.f.reads.EXPECT().OrderBySessionID(gomock.Any(), "cs_fresh").Return(s.pendingOrder("cs_fresh", ""), nil)

		_, err := s.uc.RetryFulfillment(context.Background(), "cs_fresh")

		s.True(errs.Is(err, commands.ErrNotRetryable))
	})

	s.Run("unknown order", func() {
		s.f.reads.EXPECT().OrderBySessionID(gomock.Any(), "cs_missing").Return(nil, notFound())

		_, err := s.uc.RetryFulfillment(context.Background(), "cs_missing")

		s.True(errs.Is(err, errs.ErrOrderNotFound))
	})
}

// ================================================================================
// ResendCode
// ================================================================================

func (s *FulfillmentTestSuite) TestResendCode() {
	at := testNow.Add(-time.Hour)
	fulfilled := func(sessionID, email string) *order.Order {
		return order.Reconstruct(uuid.New(), sessionID, s.productID, 2500, "ghs", email, true, &at, nil, at)
	}

	s.Run("requeues the same code to the stored address", func() {
		o := fulfilled("cs_resend", "buyer@example.com")
		jobID := uuid.New()

		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_resend").Return(o, nil)
		s.f.reads.EXPECT().ClaimedCodeByOrder(gomock.Any(), o.ID()).Return(&inventory.Code{ID: uuid.New(), Value: "PIN-77"}, nil)
		s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
		s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, job shared.NotificationJob) (uuid.UUID, error) {
				var msg delivery.Message
				s.Require().NoError(json.Unmarshal(job.Payload, &msg))
				s.Equal("buyer@example.com", msg.To)
				s.Contains(msg.Text, "PIN-77")
				return jobID, nil
			})
		s.deliverer.EXPECT().DeliverJob(gomock.Any(), jobID).Return(delivery.StatusSent, nil)

		res, err := s.uc.ResendCode(context.Background(), "cs_resend", "")

		s.Require().NoError(err)
		s.Equal(jobID, res.DeliveryJobID)
		s.Equal(delivery.StatusSent, res.Status)
	})

	s.Run("override address wins and a failed send reports retrying", func() {
		o := fulfilled("cs_resend2", "old@example.com")

		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_resend2").Return(o, nil)
		s.f.reads.EXPECT().ClaimedCodeByOrder(gomock.Any(), o.ID()).Return(&inventory.Code{Value: "PIN"}, nil)
		s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
		s.f.notifications.EXPECT().CreateJob(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		s.deliverer.EXPECT().DeliverJob(gomock.Any(), gomock.Any()).Return(delivery.StatusRetrying, errors.New("smtp 421"))

		res, err := s.uc.ResendCode(context.Background(), "cs_resend2", "new@example.com")

		s.Require().NoError(err)
		s.Equal("new@example.com", res.Recipient)
		s.Equal(delivery.StatusRetrying, res.Status)
	})

	s.Run("invalid override", func() {
		_, err := s.uc.ResendCode(context.Background(), "cs_x", "not an email")
		s.True(errs.Is(err, errs.ErrDomainValidation))
	})

	s.Run("order not fulfilled", func() {
		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_open").Return(s.pendingOrder("cs_open", "a@b.co"), nil)

		_, err := s.uc.ResendCode(context.Background(), "cs_open", "")

		s.True(errs.Is(err, commands.ErrNotFulfilled))
	})

	s.Run("no address anywhere", func() {
		o := fulfilled("cs_noaddr", "")
		s.f.orders.EXPECT().FindBySessionIDForUpdate(gomock.Any(), gomock.Any(), "cs_noaddr").Return(o, nil)
		s.f.reads.EXPECT().ClaimedCodeByOrder(gomock.Any(), o.ID()).Return(&inventory.Code{Value: "PIN"}, nil)

		_, err := s.uc.ResendCode(context.Background(), "cs_noaddr", "")

		s.True(errs.Is(err, commands.ErrNoRecipient))
	})
}
