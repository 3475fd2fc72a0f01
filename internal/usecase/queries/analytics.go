package queries

//go:generate mockgen -source=analytics.go -destination=../../../tests/mock/queries/analytics_mock.go -package=queriesmock

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/clock"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
)

const salesWindowDays = 30

type AnalyticsReadStore interface {
	Summary(ctx context.Context, since time.Time) (*readmodel.AnalyticsRM, error)
}

type AnalyticsQueries interface {
	Summary(ctx context.Context) (*readmodel.AnalyticsRM, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
	clock clock.Clock
}

func NewAnalyticsQueries(store AnalyticsReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store, clock: clk}
}

// Summary covers the current UTC day and the 30 before it.
func (q *analyticsQueriesImpl) Summary(ctx context.Context) (*readmodel.AnalyticsRM, error) {
	since := q.clock.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, -salesWindowDays)
	return q.store.Summary(ctx, since)
}
