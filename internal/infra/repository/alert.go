package repository

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertAlert = `
INSERT INTO fulfillment_alerts (id, kind, session_id, order_id, product_id, message, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

	resolveAlert = `
UPDATE fulfillment_alerts SET resolved_at = $2
WHERE id = $1 AND resolved_at IS NULL`
)

type AlertRepository struct{}

func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

func (r *AlertRepository) Create(ctx context.Context, tx db.DBTX, alert fulfillment.Alert) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertAlert,
		alert.ID,
		alert.Kind.String(),
		alert.SessionID,
		pgconv.UUIDPtrToPgtype(alert.OrderID),
		pgconv.UUIDPtrToPgtype(alert.ProductID),
		alert.Message,
		alert.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create alert", err)
	}

	return id, nil
}

func (r *AlertRepository) Resolve(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, resolveAlert, id, at)
	if err != nil {
		return false, infra.WrapRepoErr("failed to resolve alert", err)
	}

	return tag.RowsAffected() == 1, nil
}
