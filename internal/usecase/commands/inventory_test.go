//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"
	commandsmock "github.com/fredricksonsuccess129-spec/wassce-checker-site/tests/mock/commands"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type InventoryTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	f       *txFixture
	metrics *commandsmock.MockMetrics
	uc      commands.InventoryCommands
}

func (s *InventoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.f = newTxFixture(s.ctrl)
	s.metrics = commandsmock.NewMockMetrics(s.ctrl)
	s.uc = commands.NewInventoryUseCase(s.f.uow, s.metrics, clock.NewMockClock(testNow), discardLogger())
}

func (s *InventoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInventoryTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryTestSuite))
}

func (s *InventoryTestSuite) TestUploadCodes_SkipsDuplicates() {
	productID := uuid.New()
	raw := []string{" A1 ", "B2", "", "B2", "C3"}

	s.f.reads.EXPECT().ProductByID(gomock.Any(), productID).Return(&shared.ProductSnapshot{ID: productID}, nil)
	// A1 already stored, so only two of the three cleaned codes are new.
	s.f.codes.EXPECT().Ingest(gomock.Any(), gomock.Any(), productID, []string{"A1", "B2", "C3"}, testNow).Return(2, nil)
	s.f.reads.EXPECT().UnusedCodeCount(gomock.Any(), productID).Return(int64(7), nil)
	s.metrics.EXPECT().ObserveIngest(2, 3)

	res, err := s.uc.UploadCodes(context.Background(), productID, raw)

	s.Require().NoError(err)
	want := &commands.UploadCodesResult{Received: 5, Inserted: 2, Skipped: 3, Available: 7}
	if diff := cmp.Diff(want, res); diff != "" {
		s.T().Errorf("UploadCodes() mismatch (-want +got):\n%s", diff)
	}
}

func (s *InventoryTestSuite) TestUploadCodes_Errors() {
	s.Run("nothing usable", func() {
		_, err := s.uc.UploadCodes(context.Background(), uuid.New(), []string{" ", ""})
		s.True(errs.Is(err, commands.ErrEmptyUpload))
	})

	s.Run("unknown product", func() {
		s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindNotFound, "product"))

		_, err := s.uc.UploadCodes(context.Background(), uuid.New(), []string{"A"})

		s.True(errs.Is(err, errs.ErrProductNotFound))
	})

	s.Run("storage failure", func() {
		s.f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).Return(&shared.ProductSnapshot{}, nil)
		s.f.codes.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, infra.NewRepoErr(infra.KindDBFailure, "disk full"))

		_, err := s.uc.UploadCodes(context.Background(), uuid.New(), []string{"A"})

		s.True(errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
