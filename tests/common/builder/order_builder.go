//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID          uuid.UUID
	SessionID   string
	ProductID   uuid.UUID
	ProductName string
	AmountMinor int64
	Currency    string
	BuyerEmail  string
	FulfilledAt *time.Time
	StockoutAt  *time.Time
	CreatedAt   time.Time
}

func NewOrderBuilder() *OrderBuilder {
	id := uuid.New()
	return &OrderBuilder{
		ID:          id,
		SessionID:   fmt.Sprintf("cs_test_%s", id.String()[:8]),
		ProductID:   uuid.New(),
		ProductName: "WASSCE Result Checker",
		AmountMinor: 2500,
		Currency:    "ghs",
		BuyerEmail:  "buyer@example.com",
		CreatedAt:   time.Date(2026, 5, 2, 10, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) Fulfilled(at time.Time) *OrderBuilder {
	b.FulfilledAt = &at
	return b
}

func (b *OrderBuilder) BuildReadModel() *readmodel.OrderRM {
	status := "created"
	switch {
	case b.FulfilledAt != nil:
		status = "fulfilled"
	case b.StockoutAt != nil:
		status = "stockout"
	}
	return &readmodel.OrderRM{
		ID:          b.ID,
		SessionID:   b.SessionID,
		ProductID:   b.ProductID,
		ProductName: b.ProductName,
		AmountMinor: b.AmountMinor,
		Currency:    b.Currency,
		BuyerEmail:  b.BuyerEmail,
		Status:      status,
		Fulfilled:   b.FulfilledAt != nil,
		FulfilledAt: b.FulfilledAt,
		StockoutAt:  b.StockoutAt,
		CreatedAt:   b.CreatedAt,
	}
}
