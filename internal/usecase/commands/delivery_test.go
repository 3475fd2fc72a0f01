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

type DeliveryTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	f       *txFixture
	mailer  *commandsmock.MockMailer
	metrics *commandsmock.MockMetrics
	uc      commands.DeliveryCommands
}

func (s *DeliveryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newTxFixture(s.ctrl)
	s.mailer = commandsmock.NewMockMailer(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)
	s.uc = commands.NewDeliveryUseCase(s.f.uow, s.mailer, s.metrics, clock.NewMockClock(testNow), discardLogger(), commands.DeliveryOptions{
		MaxAttempts:  3,
		BaseBackoff:  30 * time.Second,
		LeaseTimeout: 5 * time.Minute,
		BatchSize:    10,
	})
}

func (s *DeliveryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestDeliveryTestSuite(t *testing.T) {
	suite.Run(t, new(DeliveryTestSuite))
}

func (s *DeliveryTestSuite) job(attempts int, msg delivery.Message) *shared.NotificationJob {
	payload, err := json.Marshal(msg)
	s.Require().NoError(err)
	return &shared.NotificationJob{
		ID:       uuid.New(),
		Kind:     delivery.KindCodeDelivery,
		Topic:    "cs_job",
		Payload:  payload,
		Attempts: attempts,
		OrderID:  func() *uuid.UUID { id := uuid.New(); return &id }(),
	}
}

func (s *DeliveryTestSuite) TestDeliverJob_Sent() {
	job := s.job(1, delivery.CodeMessage("buyer@example.com", "PIN-1", "WASSCE"))

	s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), job.ID, testNow).Return(job, nil)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg delivery.Message) error {
			s.Equal("buyer@example.com", msg.To)
			s.Contains(msg.Text, "PIN-1")
			return nil
		})
	s.f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID, testNow).Return(nil)
	s.metrics.EXPECT().ObserveDelivery(delivery.KindCodeDelivery, delivery.StatusSent)

	status, err := s.uc.DeliverJob(context.Background(), job.ID)

	s.Require().NoError(err)
	s.Equal(delivery.StatusSent, status)
}

func (s *DeliveryTestSuite) TestDeliverJob_AlreadyTakenIsSkipped() {
	id := uuid.New()
	s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), id, testNow).
		Return(nil, infra.NewRepoErr(infra.KindNotFound, "job not queued"))

	status, err := s.uc.DeliverJob(context.Background(), id)

	s.Require().NoError(err)
	s.Equal(delivery.StatusSkipped, status)
}

func (s *DeliveryTestSuite) TestDeliverJob_TransientFailureBacksOff() {
	tests := []struct {
		name     string
		attempts int
		wantRun  time.Time
	}{
		{name: "first attempt", attempts: 1, wantRun: testNow.Add(30 * time.Second)},
		{name: "second attempt doubles", attempts: 2, wantRun: testNow.Add(time.Minute)},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			job := s.job(tt.attempts, delivery.CodeMessage("buyer@example.com", "PIN", ""))

			s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), job.ID, testNow).Return(job, nil)
			s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("421 try later"))
			s.f.notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), job.ID, tt.wantRun, "421 try later").Return(nil)
			s.metrics.EXPECT().ObserveDelivery(delivery.KindCodeDelivery, delivery.StatusRetrying)

			status, err := s.uc.DeliverJob(context.Background(), job.ID)

			s.True(errs.Is(err, commands.ErrDeliveryFailed))
			s.Equal(delivery.StatusRetrying, status)
		})
	}
}

func (s *DeliveryTestSuite) TestDeliverJob_GivesUpAfterMaxAttempts() {
	job := s.job(3, delivery.CodeMessage("buyer@example.com", "PIN", ""))

	s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), job.ID, testNow).Return(job, nil)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("550 mailbox unavailable"))
	s.f.notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), job.ID, "550 mailbox unavailable", testNow).Return(nil)
	s.f.alerts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ db.DBTX, a fulfillment.Alert) (uuid.UUID, error) {
			s.Equal(fulfillment.AlertDeliveryFailed, a.Kind)
			s.Equal("cs_job", a.SessionID)
			s.Equal(job.OrderID, a.OrderID)
			return uuid.New(), nil
		})
	s.metrics.EXPECT().ObserveDelivery(delivery.KindCodeDelivery, delivery.StatusFailed)

	status, err := s.uc.DeliverJob(context.Background(), job.ID)

	s.True(errs.Is(err, commands.ErrDeliveryFailed))
	s.Equal(delivery.StatusFailed, status)
}

func (s *DeliveryTestSuite) TestDeliverJob_BadPayloadFailsWithoutSending() {
	job := s.job(1, delivery.Message{Subject: "no recipient", Text: "x"})

	s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), job.ID, testNow).Return(job, nil)
	s.f.notifications.EXPECT().MarkFailed(gomock.Any(), gomock.Any(), job.ID, gomock.Any(), testNow).Return(nil)
	s.f.alerts.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
	s.metrics.EXPECT().ObserveDelivery(delivery.KindCodeDelivery, delivery.StatusFailed)

	status, err := s.uc.DeliverJob(context.Background(), job.ID)

	s.Error(err)
	s.Equal(delivery.StatusFailed, status)
}

func (s *DeliveryTestSuite) TestDeliverJob_ClaimStorageError() {
	id := uuid.New()
	s.f.notifications.EXPECT().ClaimByID(gomock.Any(), gomock.Any(), id, testNow).
		Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset"))

	_, err := s.uc.DeliverJob(context.Background(), id)

	s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
}

func (s *DeliveryTestSuite) TestDispatchDue() {
	ok := s.job(1, delivery.CodeMessage("a@example.com", "PIN-A", ""))
	bad := s.job(1, delivery.CodeMessage("b@example.com", "PIN-B", ""))

	s.f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), testNow, 5*time.Minute, 10).
		Return([]*shared.NotificationJob{ok, bad}, nil)
	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg delivery.Message) error {
			if msg.To == "b@example.com" {
				return errors.New("timeout")
			}
			return nil
		}).Times(2)
	s.f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), ok.ID, testNow).Return(nil)
	s.f.notifications.EXPECT().Reschedule(gomock.Any(), gomock.Any(), bad.ID, gomock.Any(), "timeout").Return(nil)
	s.metrics.EXPECT().ObserveDelivery(gomock.Any(), gomock.Any()).Times(2)

	n, err := s.uc.DispatchDue(context.Background())

	s.Require().NoError(err)
	s.Equal(2, n)
}

func (s *DeliveryTestSuite) TestDispatchDue_Empty() {
	s.f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	n, err := s.uc.DispatchDue(context.Background())

	s.Require().NoError(err)
	s.Zero(n)
}
