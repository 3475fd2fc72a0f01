package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AlertRM struct {
	ID         uuid.UUID  `json:"id"`
	Kind       string     `json:"kind"`
	SessionID  string     `json:"session_id"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	ProductID  *uuid.UUID `json:"product_id,omitempty"`
	Message    string     `json:"message"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
