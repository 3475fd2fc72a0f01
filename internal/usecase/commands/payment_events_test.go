//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	commandsmock "github.com/fredricksonsuccess129-spec/wassce-checker-site/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentEventTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	verifier    *commandsmock.MockEventVerifier
	fulfillment *commandsmock.MockFulfillmentCommands
	deduper     *commandsmock.MockEventDeduper
	metrics     *commandsmock.MockMetrics
	uc          commands.PaymentEventCommands
}

func (s *PaymentEventTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.verifier = commandsmock.NewMockEventVerifier(s.ctrl)
	s.fulfillment = commandsmock.NewMockFulfillmentCommands(s.ctrl)
	s.deduper = commandsmock.NewMockEventDeduper(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)
	s.uc = commands.NewPaymentEventUseCase(s.verifier, s.fulfillment, s.deduper, s.metrics, discardLogger(), time.Second)
}

func (s *PaymentEventTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPaymentEventTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentEventTestSuite))
}

var completedEvent = payment.PaymentCompleted{
	ID:         "evt_1",
	SessionID:  "cs_1",
	BuyerEmail: "buyer@example.com",
}

func (s *PaymentEventTestSuite) TestHandle_VerificationFaultsPassThrough() {
	tests := []struct {
		name   string
		marker error
	}{
		{name: "bad signature", marker: errs.ErrSignatureInvalid},
		{name: "malformed payload", marker: errs.ErrPayloadMalformed},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.verifier.EXPECT().Verify([]byte("{}"), "t=1,v1=x").Return(nil, errs.Mark(errors.New("nope"), tt.marker))
			s.metrics.EXPECT().ObserveWebhook(commands.WebhookRejected)

			res, err := s.uc.Handle(context.Background(), []byte("{}"), "t=1,v1=x")

			s.Nil(res)
			s.True(errs.Is(err, tt.marker))
		})
	}
}

func (s *PaymentEventTestSuite) TestHandle_IgnoredEvent() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(payment.Ignored{ID: "evt_x", Type: "payment_intent.created"}, nil)
	s.metrics.EXPECT().ObserveWebhook(commands.WebhookIgnored)

	res, err := s.uc.Handle(context.Background(), nil, "")

	s.Require().NoError(err)
	s.Equal(commands.WebhookIgnored, res.Result)
	s.Equal("evt_x", res.EventID)
}

func (s *PaymentEventTestSuite) TestHandle_ReconcilesAndRemembers() {
	gomock.InOrder(
		s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(completedEvent, nil),
		s.deduper.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil),
		s.fulfillment.EXPECT().Reconcile(gomock.Any(), completedEvent).
			Return(&commands.ReconcileResult{Outcome: fulfillment.OutcomeFulfilled}, nil),
		s.deduper.EXPECT().Remember(gomock.Any(), "evt_1").Return(nil),
		s.metrics.EXPECT().ObserveWebhook(commands.WebhookReconciled),
	)

	res, err := s.uc.Handle(context.Background(), nil, "")

	s.Require().NoError(err)
	s.Equal(commands.WebhookReconciled, res.Result)
	s.Equal(fulfillment.OutcomeFulfilled, res.Outcome)
}

func (s *PaymentEventTestSuite) TestHandle_ReplayedEventSkipsReconcile() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(completedEvent, nil)
	s.deduper.EXPECT().Seen(gomock.Any(), "evt_1").Return(true, nil)
	s.metrics.EXPECT().ObserveWebhook(commands.WebhookReplayed)

	res, err := s.uc.Handle(context.Background(), nil, "")

	s.Require().NoError(err)
	s.Equal(commands.WebhookReplayed, res.Result)
	s.Equal(fulfillment.OutcomeDuplicate, res.Outcome)
}

func (s *PaymentEventTestSuite) TestHandle_CacheErrorsDoNotBlockReconcile() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(completedEvent, nil)
	s.deduper.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, errors.New("redis down"))
	s.fulfillment.EXPECT().Reconcile(gomock.Any(), completedEvent).
		Return(&commands.ReconcileResult{Outcome: fulfillment.OutcomeStockout}, nil)
	s.deduper.EXPECT().Remember(gomock.Any(), "evt_1").Return(errors.New("redis down"))
	s.metrics.EXPECT().ObserveWebhook(commands.WebhookReconciled)

	res, err := s.uc.Handle(context.Background(), nil, "")

	s.Require().NoError(err)
	s.Equal(fulfillment.OutcomeStockout, res.Outcome)
}

func (s *PaymentEventTestSuite) TestHandle_StorageFailureIsNotRemembered() {
	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(completedEvent, nil)
	s.deduper.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	s.fulfillment.EXPECT().Reconcile(gomock.Any(), completedEvent).
		Return(nil, errs.Mark(errors.New("tx aborted"), errs.ErrDatabaseOperationFailed))
	s.metrics.EXPECT().ObserveWebhook(commands.WebhookFailed)

	_, err := s.uc.Handle(context.Background(), nil, "")

	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *PaymentEventTestSuite) TestHandle_CancelledRequestStillReconciles() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s.verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(completedEvent, nil)
	s.deduper.EXPECT().Seen(gomock.Any(), "evt_1").Return(false, nil)
	s.fulfillment.EXPECT().Reconcile(gomock.Any(), completedEvent).
		DoAndReturn(func(ctx context.Context, _ payment.PaymentCompleted) (*commands.ReconcileResult, error) {
			s.NoError(ctx.Err())
			return &commands.ReconcileResult{Outcome: fulfillment.OutcomeFulfilled}, nil
		})
	s.deduper.EXPECT().Remember(gomock.Any(), "evt_1").Return(nil)
	s.metrics.EXPECT().ObserveWebhook(commands.WebhookReconciled)

	_, err := s.uc.Handle(ctx, nil, "")

	s.Require().NoError(err)
}
