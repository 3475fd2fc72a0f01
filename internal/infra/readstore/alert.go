package readstore

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
)

type AlertReadStore struct {
	db db.DBTX
}

func NewAlertReadStore(db db.DBTX) *AlertReadStore {
	return &AlertReadStore{db: db}
}

func (s *AlertReadStore) List(ctx context.Context, openOnly bool, limit int32) ([]*readmodel.AlertRM, error) {
	rows, err := s.db.Query(ctx, `
SELECT id, kind, session_id, order_id, product_id, message, resolved_at, created_at
FROM fulfillment_alerts
WHERE NOT $1 OR resolved_at IS NULL
ORDER BY created_at DESC, id DESC
LIMIT $2`, openOnly, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list alerts", err)
	}
	defer rows.Close()

	alerts := []*readmodel.AlertRM{}
	for rows.Next() {
		var a readmodel.AlertRM
		if err := rows.Scan(&a.ID, &a.Kind, &a.SessionID, &a.OrderID, &a.ProductID, &a.Message, &a.ResolvedAt, &a.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan alert", err)
		}
		alerts = append(alerts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate alerts", err)
	}

	return alerts, nil
}
