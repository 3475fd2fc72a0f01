package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CodeRM struct {
	ID         uuid.UUID  `json:"id"`
	ProductID  uuid.UUID  `json:"product_id"`
	Code       string     `json:"code"`
	Sold       bool       `json:"sold"`
	SoldAt     *time.Time `json:"sold_at,omitempty"`
	OrderID    *uuid.UUID `json:"order_id,omitempty"`
	BuyerEmail *string    `json:"buyer_email,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
