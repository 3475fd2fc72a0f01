package fulfillment

import (
	"time"

	"github.com/google/uuid"
)

type AlertKind string

const (
	AlertStockout         AlertKind = "stockout"
	AlertDeliveryFailed   AlertKind = "delivery_failed"
	AlertMissingRecipient AlertKind = "missing_recipient"
)

func (k AlertKind) String() string { return string(k) }

// Alert is an operator-facing record of a paid order that needs attention.
type Alert struct {
	ID         uuid.UUID
	Kind       AlertKind
	SessionID  string
	OrderID    *uuid.UUID
	ProductID  *uuid.UUID
	Message    string
	ResolvedAt *time.Time
	CreatedAt  time.Time
}

func NewAlert(kind AlertKind, sessionID string, orderID, productID *uuid.UUID, message string, now time.Time) Alert {
	return Alert{
		ID:        uuid.New(),
		Kind:      kind,
		SessionID: sessionID,
		OrderID:   orderID,
		ProductID: productID,
		Message:   message,
		CreatedAt: now,
	}
}
