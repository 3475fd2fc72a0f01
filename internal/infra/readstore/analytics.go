package readstore

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/shared"
)

const recentOrdersLimit = 20

type AnalyticsReadStore struct {
	uow shared.UnitOfWork
}

func NewAnalyticsReadStore(uow shared.UnitOfWork) *AnalyticsReadStore {
	return &AnalyticsReadStore{uow: uow}
}

// Summary aggregates fulfilled orders only, from one read-only snapshot.
// Daily buckets start at since.
func (s *AnalyticsReadStore) Summary(ctx context.Context, since time.Time) (*readmodel.AnalyticsRM, error) {
	var out *readmodel.AnalyticsRM
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		out, err = summarize(ctx, tx, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func summarize(ctx context.Context, q db.DBTX, since time.Time) (*readmodel.AnalyticsRM, error) {
	out := &readmodel.AnalyticsRM{
		SalesByProduct: []readmodel.ProductSalesRM{},
		SalesLast30:    []readmodel.DailySalesRM{},
	}

	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(amount_minor), 0)::bigint FROM orders WHERE fulfilled`).Scan(&out.TotalSalesMinor)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum sales", err)
	}

	err = q.QueryRow(ctx, `SELECT COUNT(*) FROM codes WHERE sold`).Scan(&out.TotalSold)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count sold codes", err)
	}

	rows, err := q.Query(ctx, `
SELECT p.id, p.name, COUNT(o.id), COALESCE(SUM(o.amount_minor), 0)::bigint AS revenue
FROM orders o
JOIN products p ON p.id = o.product_id
WHERE o.fulfilled
GROUP BY p.id, p.name
ORDER BY revenue DESC, p.name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate sales by product", err)
	}
	for rows.Next() {
		var ps readmodel.ProductSalesRM
		if err := rows.Scan(&ps.ProductID, &ps.Name, &ps.Count, &ps.RevenueMinor); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan product sales", err)
		}
		out.SalesByProduct = append(out.SalesByProduct, ps)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product sales", err)
	}

	rows, err = q.Query(ctx, `
SELECT to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, COALESCE(SUM(amount_minor), 0)::bigint
FROM orders
WHERE fulfilled AND created_at >= $1
GROUP BY day
ORDER BY day`, since)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate daily sales", err)
	}
	for rows.Next() {
		var ds readmodel.DailySalesRM
		if err := rows.Scan(&ds.Day, &ds.RevenueMinor); err != nil {
			rows.Close()
			return nil, infra.WrapRepoErr("failed to scan daily sales", err)
		}
		out.SalesLast30 = append(out.SalesLast30, ds)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate daily sales", err)
	}

	recent, err := NewOrderReadStore(q).ListRecent(ctx, nil, recentOrdersLimit)
	if err != nil {
		return nil, err
	}
	out.RecentOrders = make([]readmodel.OrderRM, len(recent))
	for i, o := range recent {
		out.RecentOrders[i] = *o
	}

	return out, nil
}
