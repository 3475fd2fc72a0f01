package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Order is one checkout attempt, keyed by the provider's session id.
type Order struct {
	id          uuid.UUID
	sessionID   string
	productID   uuid.UUID
	amountMinor int64
	currency    string
	buyerEmail  string
	fulfilled   bool
	fulfilledAt *time.Time
	stockoutAt  *time.Time
	createdAt   time.Time
}

func NewOrder(sessionID string, productID uuid.UUID, amountMinor int64, currency, buyerEmail string, now time.Time) (*Order, error) {
	sid := strings.TrimSpace(sessionID)
	if sid == "" {
		return nil, ErrEmptySessionID
	}
	if productID == uuid.Nil {
		return nil, ErrMissingProduct
	}
	if amountMinor <= 0 {
		return nil, ErrInvalidAmount
	}
	if strings.TrimSpace(currency) == "" {
		return nil, ErrEmptyCurrency
	}
	email, err := NormalizeEmail(buyerEmail)
	if err != nil {
		return nil, err
	}

	return &Order{
		id:          uuid.New(),
		sessionID:   sid,
		productID:   productID,
		amountMinor: amountMinor,
		currency:    strings.ToLower(strings.TrimSpace(currency)),
		buyerEmail:  email,
		createdAt:   now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	sessionID string,
	productID uuid.UUID,
	amountMinor int64,
	currency, buyerEmail string,
	fulfilled bool,
	fulfilledAt, stockoutAt *time.Time,
	createdAt time.Time,
) *Order {
	return &Order{
		id:          id,
		sessionID:   sessionID,
		productID:   productID,
		amountMinor: amountMinor,
		currency:    currency,
		buyerEmail:  buyerEmail,
		fulfilled:   fulfilled,
		fulfilledAt: fulfilledAt,
		stockoutAt:  stockoutAt,
		createdAt:   createdAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) SessionID() string       { return o.sessionID }
func (o *Order) ProductID() uuid.UUID    { return o.productID }
func (o *Order) AmountMinor() int64      { return o.amountMinor }
func (o *Order) Currency() string        { return o.currency }
func (o *Order) BuyerEmail() string      { return o.buyerEmail }
func (o *Order) Fulfilled() bool         { return o.fulfilled }
func (o *Order) FulfilledAt() *time.Time { return o.fulfilledAt }
func (o *Order) StockoutAt() *time.Time  { return o.stockoutAt }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }

// Status: fulfilled wins over stockout so an operator retry after restock
// reads as fulfilled.
func (o *Order) Status() Status {
	switch {
	case o.fulfilled:
		return StatusFulfilled
	case o.stockoutAt != nil:
		return StatusStockout
	default:
		return StatusCreated
	}
}

// AwaitingRestock reports whether automatic fulfillment already gave up on
// this order for lack of stock.
func (o *Order) AwaitingRestock() bool {
	return !o.fulfilled && o.stockoutAt != nil
}
