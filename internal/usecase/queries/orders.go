package queries

//go:generate mockgen -source=orders.go -destination=../../../tests/mock/queries/orders_mock.go -package=queriesmock

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const MaxOrderListLimit = 200

type OrderReadStore interface {
	ListRecent(ctx context.Context, after *readmodel.Keyset, limit int32) ([]*readmodel.OrderRM, error)
	FindBySessionID(ctx context.Context, sessionID string) (*readmodel.OrderRM, error)
}

type OrderCodeReadStore interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*inventory.Code, error)
}

type NotificationReadStore interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]readmodel.NotificationJobRM, error)
}

type OrderQueries interface {
	List(ctx context.Context, cursor *Cursor, limit int) ([]*readmodel.OrderRM, *Cursor, error)
	GetBySessionID(ctx context.Context, sessionID string) (*readmodel.OrderDetailRM, error)
}

type orderQueriesImpl struct {
	orders        OrderReadStore
	codes         OrderCodeReadStore
	notifications NotificationReadStore
}

func NewOrderQueries(orders OrderReadStore, codes OrderCodeReadStore, notifications NotificationReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders, codes: codes, notifications: notifications}
}

func (q *orderQueriesImpl) List(ctx context.Context, cursor *Cursor, limit int) ([]*readmodel.OrderRM, *Cursor, error) {
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit, MaxOrderListLimit)

	rows, err := q.orders.ListRecent(ctx, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}

func (q *orderQueriesImpl) GetBySessionID(ctx context.Context, sessionID string) (*readmodel.OrderDetailRM, error) {
	o, err := q.orders.FindBySessionID(ctx, sessionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}

	detail := &readmodel.OrderDetailRM{OrderRM: *o}

	code, err := q.codes.FindByOrderID(ctx, o.ID)
	switch {
	case err == nil:
		detail.Code = &readmodel.CodeRM{
			ID:         code.ID,
			ProductID:  code.ProductID,
			Code:       code.Value,
			Sold:       code.Sold,
			SoldAt:     code.SoldAt,
			OrderID:    code.OrderID,
			BuyerEmail: code.BuyerEmail,
			CreatedAt:  code.CreatedAt,
		}
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	detail.Deliveries, err = q.notifications.ListByOrder(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return detail, nil
}
