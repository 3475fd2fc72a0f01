package readstore

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/repository"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
)

const orderViewColumns = `
SELECT o.id, o.session_id, o.product_id, p.name, o.amount_minor, o.currency, o.buyer_email,
       o.fulfilled, o.fulfilled_at, o.stockout_at, o.created_at
FROM orders o
JOIN products p ON p.id = o.product_id`

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

// ListRecent pages newest first. after is the last row of the previous page.
func (s *OrderReadStore) ListRecent(ctx context.Context, after *readmodel.Keyset, limit int32) ([]*readmodel.OrderRM, error) {
	sql := orderViewColumns + ` ORDER BY o.created_at DESC, o.id DESC LIMIT $1`
	args := []any{limit}
	if after != nil {
		sql = orderViewColumns + `
WHERE (o.created_at, o.id) < ($2, $3)
ORDER BY o.created_at DESC, o.id DESC LIMIT $1`
		args = append(args, after.CreatedAt, after.ID)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	orders := []*readmodel.OrderRM{}
	for rows.Next() {
		o, err := scanOrderView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}

	return orders, nil
}

func (s *OrderReadStore) FindBySessionID(ctx context.Context, sessionID string) (*readmodel.OrderRM, error) {
	o, err := scanOrderView(s.db.QueryRow(ctx, orderViewColumns+` WHERE o.session_id = $1`, sessionID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

// FindEntityBySessionID loads the order aggregate without locking it.
func (s *OrderReadStore) FindEntityBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	o, err := repository.ScanOrder(s.db.QueryRow(ctx, `
SELECT id, session_id, product_id, amount_minor, currency, buyer_email, fulfilled, fulfilled_at, stockout_at, created_at
FROM orders WHERE session_id = $1`, sessionID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find order", err)
	}
	return o, nil
}

func scanOrderView(row rowScanner) (*readmodel.OrderRM, error) {
	var o readmodel.OrderRM
	err := row.Scan(
		&o.ID,
		&o.SessionID,
		&o.ProductID,
		&o.ProductName,
		&o.AmountMinor,
		&o.Currency,
		&o.BuyerEmail,
		&o.Fulfilled,
		&o.FulfilledAt,
		&o.StockoutAt,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = deriveOrderStatus(o.Fulfilled, o.StockoutAt != nil)
	return &o, nil
}

func deriveOrderStatus(fulfilled, stockout bool) string {
	switch {
	case fulfilled:
		return order.StatusFulfilled.String()
	case stockout:
		return order.StatusStockout.String()
	default:
		return order.StatusCreated.String()
	}
}
