//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	productID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		o, err := order.NewOrder(" cs_test_1 ", productID, 2500, "GHS", " buyer@example.com ", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, o.ID())
		assert.Equal(t, "cs_test_1", o.SessionID())
		assert.Equal(t, "ghs", o.Currency())
		assert.Equal(t, "buyer@example.com", o.BuyerEmail())
		assert.Equal(t, order.StatusCreated, o.Status())
		assert.False(t, o.Fulfilled())
	})

	t.Run("email may be empty at creation", func(t *testing.T) {
		o, err := order.NewOrder("cs_test_2", productID, 2500, "ghs", "", now)
		require.NoError(t, err)
		assert.Empty(t, o.BuyerEmail())
	})

	tests := []struct {
		name      string
		sessionID string
		productID uuid.UUID
		amount    int64
		currency  string
		email     string
		errIs     error
	}{
		{name: "empty session", sessionID: " ", productID: productID, amount: 1, currency: "ghs", errIs: order.ErrEmptySessionID},
		{name: "nil product", sessionID: "cs", productID: uuid.Nil, amount: 1, currency: "ghs", errIs: order.ErrMissingProduct},
		{name: "zero amount", sessionID: "cs", productID: productID, amount: 0, currency: "ghs", errIs: order.ErrInvalidAmount},
		{name: "empty currency", sessionID: "cs", productID: productID, amount: 1, currency: "", errIs: order.ErrEmptyCurrency},
		{name: "bad email", sessionID: "cs", productID: productID, amount: 1, currency: "ghs", email: "not-an-email", errIs: order.ErrInvalidEmail},
		{name: "display-name email rejected", sessionID: "cs", productID: productID, amount: 1, currency: "ghs", email: "Bob <bob@example.com>", errIs: order.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(tt.sessionID, tt.productID, tt.amount, tt.currency, tt.email, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestOrderStatus(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name       string
		fulfilled  bool
		stockoutAt *time.Time
		want       order.Status
		awaiting   bool
	}{
		{name: "created", want: order.StatusCreated},
		{name: "stockout", stockoutAt: &now, want: order.StatusStockout, awaiting: true},
		{name: "fulfilled", fulfilled: true, want: order.StatusFulfilled},
		{name: "fulfilled after restock", fulfilled: true, stockoutAt: &now, want: order.StatusFulfilled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.Reconstruct(uuid.New(), "cs", uuid.New(), 100, "ghs", "", tt.fulfilled, nil, tt.stockoutAt, now)
			assert.Equal(t, tt.want, o.Status())
			assert.Equal(t, tt.awaiting, o.AwaitingRestock())
		})
	}
}

func TestResolveRecipient(t *testing.T) {
	assert.Equal(t, "meta@example.com", order.ResolveRecipient("meta@example.com", "cust@example.com", "order@example.com"))
	assert.Equal(t, "cust@example.com", order.ResolveRecipient("", "cust@example.com", "order@example.com"))
	assert.Equal(t, "order@example.com", order.ResolveRecipient("garbage", "", "order@example.com"))
	assert.Equal(t, "", order.ResolveRecipient("", "", ""))
}
