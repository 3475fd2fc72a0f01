package readstore

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const codeViewColumns = `
SELECT id, product_id, code, sold, sold_at, order_id, buyer_email, created_at
FROM codes`

type CodeReadStore struct {
	db db.DBTX
}

func NewCodeReadStore(db db.DBTX) *CodeReadStore {
	return &CodeReadStore{db: db}
}

// List pages codes newest first, optionally for one product.
func (s *CodeReadStore) List(ctx context.Context, productID *uuid.UUID, after *readmodel.Keyset, limit int32) ([]*readmodel.CodeRM, error) {
	sql := codeViewColumns + `
WHERE ($2::uuid IS NULL OR product_id = $2)
  AND ($3::timestamptz IS NULL OR (created_at, id) < ($3, $4::uuid))
ORDER BY created_at DESC, id DESC
LIMIT $1`

	var afterAt, afterID any
	if after != nil {
		afterAt, afterID = after.CreatedAt, after.ID
	}

	rows, err := s.db.Query(ctx, sql, limit, productID, afterAt, afterID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list codes", err)
	}
	defer rows.Close()

	codes := []*readmodel.CodeRM{}
	for rows.Next() {
		var c readmodel.CodeRM
		if err := rows.Scan(&c.ID, &c.ProductID, &c.Code, &c.Sold, &c.SoldAt, &c.OrderID, &c.BuyerEmail, &c.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan code", err)
		}
		codes = append(codes, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate codes", err)
	}

	return codes, nil
}

func (s *CodeReadStore) CountUnused(ctx context.Context, productID uuid.UUID) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM codes WHERE product_id = $1 AND sold = false`, productID).Scan(&n)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count unused codes", err)
	}
	return n, nil
}

func (s *CodeReadStore) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*inventory.Code, error) {
	var c inventory.Code
	err := s.db.QueryRow(ctx, codeViewColumns+` WHERE order_id = $1`, orderID).
		Scan(&c.ID, &c.ProductID, &c.Value, &c.Sold, &c.SoldAt, &c.OrderID, &c.BuyerEmail, &c.CreatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find code by order", err)
	}
	return &c, nil
}
