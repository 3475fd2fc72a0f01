package commands

//go:generate mockgen -source=checkout.go -destination=../../../tests/mock/commands/checkout_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentProviderUnavailable = errs.New("payment provider not configured")
	ErrPaymentProviderFailed      = errs.New("payment provider request failed")
)

type CreateCheckoutRequest struct {
	ProductID  uuid.UUID
	BuyerEmail string
}

type CreateCheckoutResult struct {
	SessionID string
	URL       string
	OrderID   uuid.UUID
}

type CheckoutCommands interface {
	CreateSession(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	uow      shared.UnitOfWork
	sessions SessionCreator
	clock    clock.Clock
	logger   *slog.Logger
}

func NewCheckoutUseCase(uow shared.UnitOfWork, sessions SessionCreator, clk clock.Clock, logger *slog.Logger) CheckoutCommands {
	return &checkoutUseCaseImpl{uow: uow, sessions: sessions, clock: clk, logger: logger}
}

func (uc *checkoutUseCaseImpl) CreateSession(ctx context.Context, req CreateCheckoutRequest) (*CreateCheckoutResult, error) {
	email, err := order.NormalizeEmail(req.BuyerEmail)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	reads := uc.uow.CommandReads()
	product, err := reads.ProductByID(ctx, req.ProductID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Advisory only: the claim at fulfillment time is what guarantees a code.
	available, err := reads.UnusedCodeCount(ctx, product.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if available == 0 {
		return nil, errs.ErrOutOfStock
	}

	session, err := uc.sessions.CreateSession(ctx, CheckoutRequest{
		ProductID:   product.ID,
		ProductName: product.Name,
		Description: product.Description,
		AmountMinor: product.PriceMinor,
		Currency:    product.Currency,
		BuyerEmail:  email,
	})
	if err != nil {
		if errs.Is(err, ErrPaymentProviderUnavailable) {
			return nil, err
		}
		return nil, errs.Mark(err, ErrPaymentProviderFailed)
	}

	o, err := order.NewOrder(session.ID, product.ID, product.PriceMinor, product.Currency, email, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, derr := tx.Orders().Create(ctx, tx.DB(), o)
		return derr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrDuplicateSession)
		}
		// The hosted page exists but the ledger has no row; a completed payment
		// for it will reconcile as unknown_session.
		uc.logger.Error("failed to record order for checkout session",
			"session_id", session.ID,
			"product_id", product.ID.String(),
			"error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	uc.logger.Info("checkout session created",
		"session_id", session.ID,
		"order_id", o.ID().String(),
		"product_id", product.ID.String())

	return &CreateCheckoutResult{SessionID: session.ID, URL: session.URL, OrderID: o.ID()}, nil
}
