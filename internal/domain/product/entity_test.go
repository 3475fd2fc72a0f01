//go:build unit

package product_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/product"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		p, err := product.NewProduct("  WASSCE Checker  ", " Result checker voucher ", 2500, "GHS", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, "WASSCE Checker", p.Name())
		assert.Equal(t, "Result checker voucher", p.Description())
		assert.Equal(t, int64(2500), p.Price().Minor())
		assert.Equal(t, "ghs", p.Price().Currency())
		assert.Equal(t, now, p.CreatedAt())
	})

	tests := []struct {
		name     string
		pName    string
		desc     string
		price    int64
		currency string
		errIs    error
	}{
		{name: "empty name", pName: "   ", price: 100, currency: "ghs", errIs: product.ErrEmptyName},
		{name: "name too long", pName: strings.Repeat("a", product.MaxNameLength+1), price: 100, currency: "ghs", errIs: product.ErrNameTooLong},
		{name: "description too long", pName: "x", desc: strings.Repeat("d", product.MaxDescriptionLength+1), price: 100, currency: "ghs", errIs: product.ErrDescriptionTooLong},
		{name: "zero price", pName: "x", price: 0, currency: "ghs", errIs: product.ErrInvalidPrice},
		{name: "negative price", pName: "x", price: -5, currency: "ghs", errIs: product.ErrInvalidPrice},
		{name: "short currency", pName: "x", price: 100, currency: "gh", errIs: product.ErrInvalidCurrency},
		{name: "non-letter currency", pName: "x", price: 100, currency: "g1s", errIs: product.ErrInvalidCurrency},
		{name: "name at maximum length", pName: strings.Repeat("a", product.MaxNameLength), price: 100, currency: "usd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := product.NewProduct(tt.pName, tt.desc, tt.price, tt.currency, now)
			if tt.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}
