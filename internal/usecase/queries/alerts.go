package queries

//go:generate mockgen -source=alerts.go -destination=../../../tests/mock/queries/alerts_mock.go -package=queriesmock

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
)

const alertListLimit = 200

type AlertReadStore interface {
	List(ctx context.Context, openOnly bool, limit int32) ([]*readmodel.AlertRM, error)
}

type AlertQueries interface {
	List(ctx context.Context, openOnly bool) ([]*readmodel.AlertRM, error)
}

type alertQueriesImpl struct {
	store AlertReadStore
}

func NewAlertQueries(store AlertReadStore) AlertQueries {
	return &alertQueriesImpl{store: store}
}

func (q *alertQueriesImpl) List(ctx context.Context, openOnly bool) ([]*readmodel.AlertRM, error) {
	return q.store.List(ctx, openOnly, alertListLimit)
}
