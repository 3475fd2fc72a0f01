package order

import "errors"

var (
	ErrEmptySessionID = errors.New("payment session id cannot be empty")
	ErrInvalidAmount  = errors.New("order amount must be positive")
	ErrInvalidEmail   = errors.New("buyer email is not a valid address")
	ErrMissingProduct = errors.New("order must reference a product")
	ErrEmptyCurrency  = errors.New("order currency cannot be empty")
)

type Status string

const (
	StatusCreated   Status = "created"
	StatusFulfilled Status = "fulfilled"
	StatusStockout  Status = "stockout"
)

func (s Status) String() string { return string(s) }
