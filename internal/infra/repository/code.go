package repository

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// The inner select picks the oldest unused code. SKIP LOCKED lets concurrent
// claims for the same product take different rows instead of queueing.
const claimUnusedCodeSkipLocked = `
UPDATE codes
SET sold = true, sold_at = $3, order_id = $2, buyer_email = $4
WHERE id = (
    SELECT id FROM codes
    WHERE product_id = $1 AND sold = false
    ORDER BY created_at, id
    FOR UPDATE SKIP LOCKED
    LIMIT 1
)
RETURNING id, product_id, code, sold, sold_at, order_id, buyer_email, created_at`

// Used when every unused row was locked by someone else. Rows that turn out
// sold after the wait fail the recheck and the scan moves on.
const claimUnusedCodeBlocking = `
UPDATE codes
SET sold = true, sold_at = $3, order_id = $2, buyer_email = $4
WHERE id = (
    SELECT id FROM codes
    WHERE product_id = $1 AND sold = false
    ORDER BY created_at, id
    FOR UPDATE
    LIMIT 1
)
AND sold = false
RETURNING id, product_id, code, sold, sold_at, order_id, buyer_email, created_at`

const insertCode = `
INSERT INTO codes (product_id, code, created_at)
VALUES ($1, $2, $3)
ON CONFLICT (product_id, code) DO NOTHING`

type CodeRepository struct{}

func NewCodeRepository() *CodeRepository {
	return &CodeRepository{}
}

func (r *CodeRepository) ClaimUnused(ctx context.Context, tx db.DBTX, productID, orderID uuid.UUID, buyerEmail string, at time.Time) (*inventory.Code, error) {
	code, err := scanCode(tx.QueryRow(ctx, claimUnusedCodeSkipLocked, productID, orderID, at, buyerEmail))
	if err == nil {
		return code, nil
	}
	if !pgconv.IsNoRows(err) {
		return nil, infra.WrapRepoErr("failed to claim code", err)
	}

	code, err = scanCode(tx.QueryRow(ctx, claimUnusedCodeBlocking, productID, orderID, at, buyerEmail))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "no unused code left")
		}
		return nil, infra.WrapRepoErr("failed to claim code", err)
	}

	return code, nil
}

func (r *CodeRepository) Ingest(ctx context.Context, tx db.DBTX, productID uuid.UUID, codes []string, at time.Time) (int, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	// created_at is bumped per row to keep upload order as claim order
	batch := &pgx.Batch{}
	for i, c := range codes {
		batch.Queue(insertCode, productID, c, at.Add(time.Duration(i)*time.Microsecond))
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range codes {
		tag, err := results.Exec()
		if err != nil {
			return 0, infra.WrapRepoErr("failed to insert code", err)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCode(row rowScanner) (*inventory.Code, error) {
	var (
		c          inventory.Code
		soldAt     pgtype.Timestamptz
		orderID    pgtype.UUID
		buyerEmail pgtype.Text
	)
	if err := row.Scan(&c.ID, &c.ProductID, &c.Value, &c.Sold, &soldAt, &orderID, &buyerEmail, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.SoldAt = pgconv.TimePtrFromPgtype(soldAt)
	c.OrderID = pgconv.UUIDPtrFromPgtype(orderID)
	c.BuyerEmail = pgconv.StringPtrFromPgtype(buyerEmail)
	return &c, nil
}
