package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type OrderRM struct {
	ID          uuid.UUID  `json:"id"`
	SessionID   string     `json:"session_id"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	AmountMinor int64      `json:"amount_minor"`
	Currency    string     `json:"currency"`
	BuyerEmail  string     `json:"buyer_email"`
	Status      string     `json:"status"`
	Fulfilled   bool       `json:"fulfilled"`
	FulfilledAt *time.Time `json:"fulfilled_at,omitempty"`
	StockoutAt  *time.Time `json:"stockout_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// OrderDetailRM is the operator view of one order.
type OrderDetailRM struct {
	OrderRM
	Code       *CodeRM             `json:"code,omitempty"`
	Deliveries []NotificationJobRM `json:"deliveries"`
}

type NotificationJobRM struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Keyset is the position of the last row of a newest-first page.
type Keyset struct {
	CreatedAt time.Time
	ID        uuid.UUID
}
