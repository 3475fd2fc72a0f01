package commands

//go:generate mockgen -source=alerts.go -destination=../../../tests/mock/commands/alerts_mock.go -package=commandsmock

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAlertNotFound = errs.New("alert not found or already resolved")

type AlertCommands interface {
	Resolve(ctx context.Context, id uuid.UUID) error
}

type alertUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAlertUseCase(uow shared.UnitOfWork, clk clock.Clock) AlertCommands {
	return &alertUseCaseImpl{uow: uow, clock: clk}
}

func (uc *alertUseCaseImpl) Resolve(ctx context.Context, id uuid.UUID) error {
	var resolved bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		resolved, derr = tx.Alerts().Resolve(ctx, tx.DB(), id, uc.clock.Now())
		return derr
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !resolved {
		return ErrAlertNotFound
	}
	return nil
}
