package shared

import (
	"time"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceMinor  int64
	Currency    string
}

// Notification job states
const (
	JobQueued  = "queued"
	JobSending = "sending"
	JobSent    = "sent"
	JobFailed  = "failed"
)

// NotificationJob is one outbox row. Payload is a JSON encoded delivery.Message.
type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	Status    string
	Attempts  int
	RunAt     time.Time
	LastError *string
	OrderID   *uuid.UUID
}
