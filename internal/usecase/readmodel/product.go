package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ProductRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceMinor  int64     `json:"price_minor"`
	Currency    string    `json:"currency"`
	Available   int64     `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
}
