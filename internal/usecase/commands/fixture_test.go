//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"
	sharedmock "github.com/fredricksonsuccess129-spec/wassce-checker-site/tests/mock/shared"

	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// txFixture runs every Within closure against one mocked transaction.
type txFixture struct {
	uow           *sharedmock.MockUnitOfWork
	tx            *sharedmock.MockTx
	reads         *sharedmock.MockCommandReads
	products      *sharedmock.MockProductRepository
	codes         *sharedmock.MockCodeRepository
	orders        *sharedmock.MockOrderRepository
	notifications *sharedmock.MockNotificationRepository
	alerts        *sharedmock.MockAlertRepository
}

func newTxFixture(ctrl *gomock.Controller) *txFixture {
	f := &txFixture{
		uow:           sharedmock.NewMockUnitOfWork(ctrl),
		tx:            sharedmock.NewMockTx(ctrl),
		reads:         sharedmock.NewMockCommandReads(ctrl),
		products:      sharedmock.NewMockProductRepository(ctrl),
		codes:         sharedmock.NewMockCodeRepository(ctrl),
		orders:        sharedmock.NewMockOrderRepository(ctrl),
		notifications: sharedmock.NewMockNotificationRepository(ctrl),
		alerts:        sharedmock.NewMockAlertRepository(ctrl),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()

	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Products().Return(f.products).AnyTimes()
	f.tx.EXPECT().Codes().Return(f.codes).AnyTimes()
	f.tx.EXPECT().Orders().Return(f.orders).AnyTimes()
	f.tx.EXPECT().Notifications().Return(f.notifications).AnyTimes()
	f.tx.EXPECT().Alerts().Return(f.alerts).AnyTimes()
	return f
}
