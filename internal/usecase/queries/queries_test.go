//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/inventory"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/queries"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"
	queriesmock "github.com/fredricksonsuccess129-spec/wassce-checker-site/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func codeRows(n int) []*readmodel.CodeRM {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]*readmodel.CodeRM, n)
	for i := range rows {
		rows[i] = &readmodel.CodeRM{ID: uuid.New(), Code: "PIN", CreatedAt: base.Add(-time.Duration(i) * time.Minute)}
	}
	return rows
}

func TestCodeQueries_List(t *testing.T) {
	t.Run("full page returns a cursor at the last row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		rows := codeRows(3)
		store.EXPECT().List(gomock.Any(), nil, nil, int32(3)).Return(rows, nil)

		got, next, err := queries.NewCodeQueries(store).List(context.Background(), nil, nil, 2)

		require.NoError(t, err)
		assert.Len(t, got, 2)
		require.NotNil(t, next)
		ks, err := next.Keyset()
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, ks.ID)
		assert.True(t, rows[1].CreatedAt.Equal(ks.CreatedAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)
		productID := uuid.New()
		store.EXPECT().List(gomock.Any(), &productID, nil, int32(queries.MaxCodeListLimit+1)).Return(codeRows(1), nil)

		got, next, err := queries.NewCodeQueries(store).List(context.Background(), &productID, nil, 0)

		require.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Nil(t, next)
	})

	t.Run("bad cursor never reaches the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockCodeReadStore(ctrl)

		_, _, err := queries.NewCodeQueries(store).List(context.Background(), nil, &queries.Cursor{After: "garbage"}, 10)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestOrderQueries_GetBySessionID(t *testing.T) {
	orderID := uuid.New()
	rm := &readmodel.OrderRM{ID: orderID, SessionID: "cs_1", Status: "fulfilled", Fulfilled: true}

	t.Run("joins code and deliveries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		codes := queriesmock.NewMockOrderCodeReadStore(ctrl)
		notifications := queriesmock.NewMockNotificationReadStore(ctrl)

		orders.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(rm, nil)
		codes.EXPECT().FindByOrderID(gomock.Any(), orderID).Return(&inventory.Code{ID: uuid.New(), Value: "PIN-9", Sold: true, OrderID: &orderID}, nil)
		notifications.EXPECT().ListByOrder(gomock.Any(), orderID).Return([]readmodel.NotificationJobRM{{Kind: "code_delivery", Status: "sent"}}, nil)

		got, err := queries.NewOrderQueries(orders, codes, notifications).GetBySessionID(context.Background(), "cs_1")

		require.NoError(t, err)
		require.NotNil(t, got.Code)
		assert.Equal(t, "PIN-9", got.Code.Code)
		assert.Len(t, got.Deliveries, 1)
	})

	t.Run("unfulfilled order has no code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		codes := queriesmock.NewMockOrderCodeReadStore(ctrl)
		notifications := queriesmock.NewMockNotificationReadStore(ctrl)

		orders.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(rm, nil)
		codes.EXPECT().FindByOrderID(gomock.Any(), orderID).Return(nil, infra.NewRepoErr(infra.KindNotFound, "code"))
		notifications.EXPECT().ListByOrder(gomock.Any(), orderID).Return(nil, nil)

		got, err := queries.NewOrderQueries(orders, codes, notifications).GetBySessionID(context.Background(), "cs_1")

		require.NoError(t, err)
		assert.Nil(t, got.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		orders.EXPECT().FindBySessionID(gomock.Any(), "cs_x").Return(nil, infra.NewRepoErr(infra.KindNotFound, "order"))

		_, err := queries.NewOrderQueries(orders, nil, nil).GetBySessionID(context.Background(), "cs_x")

		assert.True(t, errs.Is(err, errs.ErrOrderNotFound))
	})

	t.Run("storage error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		orders := queriesmock.NewMockOrderReadStore(ctrl)
		codes := queriesmock.NewMockOrderCodeReadStore(ctrl)
		boom := errors.New("boom")
		orders.EXPECT().FindBySessionID(gomock.Any(), "cs_1").Return(rm, nil)
		codes.EXPECT().FindByOrderID(gomock.Any(), orderID).Return(nil, boom)

		_, err := queries.NewOrderQueries(orders, codes, nil).GetBySessionID(context.Background(), "cs_1")

		assert.ErrorIs(t, err, boom)
	})
}

func TestCatalogQueries_GetProduct_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockProductReadStore(ctrl)
	store.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, infra.NewRepoErr(infra.KindNotFound, "product"))

	_, err := queries.NewCatalogQueries(store).GetProduct(context.Background(), uuid.New())

	assert.True(t, errs.Is(err, errs.ErrProductNotFound))
}
