package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/delivery"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/fulfillment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"

	"github.com/google/uuid"
)

// CheckoutRequest is what the payment provider needs to open a hosted
// checkout page for one unit of a product.
type CheckoutRequest struct {
	ProductID   uuid.UUID
	ProductName string
	Description string
	AmountMinor int64
	Currency    string
	BuyerEmail  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

type SessionCreator interface {
	CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error)
}

// EventVerifier authenticates and decodes a raw provider callback. It returns
// errors marked with errs.ErrSignatureInvalid or errs.ErrPayloadMalformed.
type EventVerifier interface {
	Verify(payload []byte, signature string) (payment.Event, error)
}

type Mailer interface {
	Send(ctx context.Context, msg delivery.Message) error
}

// OutcomeRecord is published once per reconciled confirmation.
type OutcomeRecord struct {
	EventID   string              `json:"event_id"`
	SessionID string              `json:"session_id"`
	OrderID   *uuid.UUID          `json:"order_id,omitempty"`
	ProductID *uuid.UUID          `json:"product_id,omitempty"`
	Outcome   fulfillment.Outcome `json:"outcome"`
	At        time.Time           `json:"at"`
}

// OutcomePublisher is best effort; it never fails the caller.
type OutcomePublisher interface {
	PublishOutcome(ctx context.Context, rec OutcomeRecord)
}

// EventDeduper remembers processed provider event ids. It only short-cuts
// redelivery; the order ledger stays authoritative.
type EventDeduper interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Remember(ctx context.Context, eventID string) error
}

type Metrics interface {
	ObserveReconcile(outcome fulfillment.Outcome, elapsed time.Duration)
	ObserveWebhook(result string)
	ObserveDelivery(kind string, status delivery.Status)
	ObserveIngest(inserted, skipped int)
}
