package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/product"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Codes() CodeRepository
	Orders() OrderRepository
	Notifications() NotificationRepository
	Alerts() AlertRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	UnusedCodeCount(ctx context.Context, productID uuid.UUID) (int64, error)
	OrderBySessionID(ctx context.Context, sessionID string) (*order.Order, error)
	ClaimedCodeByOrder(ctx context.Context, orderID uuid.UUID) (*inventory.Code, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
}

// CodeRepository is the inventory store. A code moves from unused to sold
// exactly once.
type CodeRepository interface {
	// ClaimUnused binds the oldest unused code of the product to the order.
	// It returns a NOT_FOUND repository error when none is left.
	ClaimUnused(ctx context.Context, tx db.DBTX, productID, orderID uuid.UUID, buyerEmail string, at time.Time) (*inventory.Code, error)
	// Ingest inserts codes as unused and returns how many were new.
	Ingest(ctx context.Context, tx db.DBTX, productID uuid.UUID, codes []string, at time.Time) (int, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) (uuid.UUID, error)
	// FindBySessionIDForUpdate row-locks the order until the transaction ends.
	FindBySessionIDForUpdate(ctx context.Context, tx db.DBTX, sessionID string) (*order.Order, error)
	// MarkFulfilled records the delivery address (kept when empty) and reports
	// false when the order was already fulfilled.
	MarkFulfilled(ctx context.Context, tx db.DBTX, orderID uuid.UUID, buyerEmail string, at time.Time) (bool, error)
	MarkStockout(ctx context.Context, tx db.DBTX, orderID uuid.UUID, at time.Time) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, job NotificationJob) (uuid.UUID, error)
	// ClaimByID moves a queued job to sending. It returns NOT_FOUND when the
	// job is missing or already taken.
	ClaimByID(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) (*NotificationJob, error)
	// ClaimDue leases up to limit jobs that are due, including sending jobs
	// whose lease expired.
	ClaimDue(ctx context.Context, tx db.DBTX, now time.Time, lease time.Duration, limit int) ([]*NotificationJob, error)
	MarkSent(ctx context.Context, tx db.DBTX, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, tx db.DBTX, id uuid.UUID, runAt time.Time, lastError string) error
	MarkFailed(ctx context.Context, tx db.DBTX, id uuid.UUID, lastError string, now time.Time) error
}

type AlertRepository interface {
	Create(ctx context.Context, tx db.DBTX, alert fulfillment.Alert) (uuid.UUID, error)
	// Resolve reports false when the alert is missing or already resolved.
	Resolve(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) (bool, error)
}
