//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const (
	DefaultProductName = "WASSCE Checker"
	DefaultPriceMinor  = 2500
	DefaultCurrency    = "ghs"
)

func CreateTestProduct(t *testing.T, db DBLike, name string, priceMinor int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, name, price_minor, currency) VALUES ($1, $2, $3, $4)",
		productID, name, priceMinor, DefaultCurrency)
	require.NoError(t, err)

	return productID
}

// SeedCodes inserts unused codes one millisecond apart so claim order is
// the slice order.
func SeedCodes(t *testing.T, db DBLike, productID uuid.UUID, codes ...string) {
	t.Helper()

	base := time.Now().Add(-time.Hour)
	for i, code := range codes {
		_, err := db.Exec(context.Background(),
			"INSERT INTO codes (product_id, code, created_at) VALUES ($1, $2, $3)",
			productID, code, base.Add(time.Duration(i)*time.Millisecond))
		require.NoError(t, err)
	}
}

// CreateTestOrder records a pending order as the checkout endpoint would.
func CreateTestOrder(t *testing.T, db DBLike, sessionID string, productID uuid.UUID, buyerEmail string) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO orders (id, session_id, product_id, amount_minor, currency, buyer_email) VALUES ($1, $2, $3, $4, $5, $6)",
		orderID, sessionID, productID, DefaultPriceMinor, DefaultCurrency, buyerEmail)
	require.NoError(t, err)

	return orderID
}

type OrderState struct {
	Fulfilled  bool
	BuyerEmail string
	StockoutAt *time.Time
}

func GetOrderState(t *testing.T, db DBLike, sessionID string) OrderState {
	t.Helper()

	var s OrderState
	err := db.QueryRow(context.Background(),
		"SELECT fulfilled, buyer_email, stockout_at FROM orders WHERE session_id = $1", sessionID).
		Scan(&s.Fulfilled, &s.BuyerEmail, &s.StockoutAt)
	require.NoError(t, err)

	return s
}

// ClaimedCode returns the code bound to the order, or "" when none is.
func ClaimedCode(t *testing.T, db DBLike, sessionID string) string {
	t.Helper()

	var code string
	err := db.QueryRow(context.Background(), `
		SELECT COALESCE(
		    (SELECT c.code FROM codes c JOIN orders o ON o.id = c.order_id WHERE o.session_id = $1),
		    '')`, sessionID).Scan(&code)
	require.NoError(t, err)

	return code
}

type CodeRow struct {
	ID         uuid.UUID
	Code       string
	Sold       bool
	SoldAt     *time.Time
	OrderID    *uuid.UUID
	BuyerEmail *string
}

// GetCode reads the stored row of a code by its value.
func GetCode(t *testing.T, db DBLike, productID uuid.UUID, code string) CodeRow {
	t.Helper()

	var r CodeRow
	err := db.QueryRow(context.Background(), `
		SELECT id, code, sold, sold_at, order_id, buyer_email
		FROM codes WHERE product_id = $1 AND code = $2`, productID, code).
		Scan(&r.ID, &r.Code, &r.Sold, &r.SoldAt, &r.OrderID, &r.BuyerEmail)
	require.NoError(t, err)

	return r
}

func GetOrderID(t *testing.T, db DBLike, sessionID string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM orders WHERE session_id = $1", sessionID).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountCodes(t *testing.T, db DBLike, productID uuid.UUID, sold bool) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM codes WHERE product_id = $1 AND sold = $2", productID, sold).Scan(&n)
	require.NoError(t, err)

	return n
}

func CountJobs(t *testing.T, db DBLike, kind, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND topic = $2", kind, topic).Scan(&n)
	require.NoError(t, err)

	return n
}

func CountOpenAlerts(t *testing.T, db DBLike, kind string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM fulfillment_alerts WHERE kind = $1 AND resolved_at IS NULL", kind).Scan(&n)
	require.NoError(t, err)

	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO products (name, description, price_minor, currency)
		SELECT $1, 'Reference product', $2, $3
		WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1);
	`, DefaultProductName, DefaultPriceMinor, DefaultCurrency)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
