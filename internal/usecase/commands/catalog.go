package commands

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/product"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateProductRequest struct {
	Name        string
	Description string
	PriceMinor  int64
	Currency    string
}

type CatalogCommands interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (uuid.UUID, error)
}

type catalogUseCaseImpl struct {
	uow             shared.UnitOfWork
	defaultCurrency string
	clock           clock.Clock
	logger          *slog.Logger
}

func NewCatalogUseCase(uow shared.UnitOfWork, defaultCurrency string, clk clock.Clock, logger *slog.Logger) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, defaultCurrency: defaultCurrency, clock: clk, logger: logger}
}

func (uc *catalogUseCaseImpl) CreateProduct(ctx context.Context, req CreateProductRequest) (uuid.UUID, error) {
	currency := req.Currency
	if currency == "" {
		currency = uc.defaultCurrency
	}

	p, err := product.NewProduct(req.Name, req.Description, req.PriceMinor, currency, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		id, derr = tx.Products().Create(ctx, tx.DB(), p)
		return derr
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.logger.Info("product created", "product_id", id.String(), "name", p.Name())
	return id, nil
}
