package commands

//go:generate mockgen -source=inventory.go -destination=../../../tests/mock/commands/inventory_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmptyUpload = errs.New("no codes in upload")

type UploadCodesResult struct {
	Received  int
	Inserted  int
	Skipped   int
	Available int64
}

type InventoryCommands interface {
	// UploadCodes adds codes as unused. Codes already stored for the
	// product are skipped, so re-uploading a file is harmless.
	UploadCodes(ctx context.Context, productID uuid.UUID, raw []string) (*UploadCodesResult, error)
}

type inventoryUseCaseImpl struct {
	uow     shared.UnitOfWork
	metrics Metrics
	clock   clock.Clock
	logger  *slog.Logger
}

func NewInventoryUseCase(uow shared.UnitOfWork, metrics Metrics, clk clock.Clock, logger *slog.Logger) InventoryCommands {
	return &inventoryUseCaseImpl{uow: uow, metrics: metrics, clock: clk, logger: logger}
}

func (uc *inventoryUseCaseImpl) UploadCodes(ctx context.Context, productID uuid.UUID, raw []string) (*UploadCodesResult, error) {
	batch := inventory.NormalizeBatch(raw)
	if len(batch.Codes) == 0 {
		return nil, ErrEmptyUpload
	}

	res := &UploadCodesResult{Received: len(raw)}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ProductByID(ctx, productID); derr != nil {
			return derr
		}

		inserted, derr := tx.Codes().Ingest(ctx, tx.DB(), productID, batch.Codes, uc.clock.Now())
		if derr != nil {
			return derr
		}
		res.Inserted = inserted
		res.Skipped = len(raw) - inserted

		res.Available, derr = tx.Reads().UnusedCodeCount(ctx, productID)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.metrics.ObserveIngest(res.Inserted, res.Skipped)
	uc.logger.Info("codes uploaded",
		"product_id", productID.String(),
		"inserted", res.Inserted,
		"skipped", res.Skipped,
		"available", res.Available)
	return res, nil
}
