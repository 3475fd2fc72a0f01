package repository

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	insertOrder = `
INSERT INTO orders (id, session_id, product_id, amount_minor, currency, buyer_email, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	selectOrderBySessionForUpdate = `
SELECT id, session_id, product_id, amount_minor, currency, buyer_email, fulfilled, fulfilled_at, stockout_at, created_at
FROM orders
WHERE session_id = $1
FOR UPDATE`

	markOrderFulfilled = `
UPDATE orders
SET fulfilled = true, fulfilled_at = $2, buyer_email = CASE WHEN $3 <> '' THEN $3 ELSE buyer_email END
WHERE id = $1 AND fulfilled = false`

	markOrderStockout = `
UPDATE orders SET stockout_at = COALESCE(stockout_at, $2)
WHERE id = $1`
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertOrder,
		o.ID(),
		o.SessionID(),
		o.ProductID(),
		o.AmountMinor(),
		o.Currency(),
		o.BuyerEmail(),
		o.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	return id, nil
}

func (r *OrderRepository) FindBySessionIDForUpdate(ctx context.Context, tx db.DBTX, sessionID string) (*order.Order, error) {
	o, err := ScanOrder(tx.QueryRow(ctx, selectOrderBySessionForUpdate, sessionID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order by session", err)
	}

	return o, nil
}

func (r *OrderRepository) MarkFulfilled(ctx context.Context, tx db.DBTX, orderID uuid.UUID, buyerEmail string, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, markOrderFulfilled, orderID, at, buyerEmail)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark order fulfilled", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *OrderRepository) MarkStockout(ctx context.Context, tx db.DBTX, orderID uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx, markOrderStockout, orderID, at)
	if err != nil {
		return infra.WrapRepoErr("failed to mark order stockout", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "order not found")
	}

	return nil
}

// ScanOrder reads the column list used by every order select.
func ScanOrder(row rowScanner) (*order.Order, error) {
	var (
		id          uuid.UUID
		sessionID   string
		productID   uuid.UUID
		amount      int64
		currency    string
		buyerEmail  string
		fulfilled   bool
		fulfilledAt pgtype.Timestamptz
		stockoutAt  pgtype.Timestamptz
		createdAt   time.Time
	)
	err := row.Scan(&id, &sessionID, &productID, &amount, &currency, &buyerEmail, &fulfilled, &fulfilledAt, &stockoutAt, &createdAt)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(
		id,
		sessionID,
		productID,
		amount,
		currency,
		buyerEmail,
		fulfilled,
		pgconv.TimePtrFromPgtype(fulfilledAt),
		pgconv.TimePtrFromPgtype(stockoutAt),
		createdAt,
	), nil
}
