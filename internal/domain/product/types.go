package product

import "errors"

var (
	ErrEmptyName          = errors.New("product name cannot be empty")
	ErrNameTooLong        = errors.New("product name exceeds maximum length")
	ErrDescriptionTooLong = errors.New("product description exceeds maximum length")
	ErrInvalidPrice       = errors.New("price must be a positive amount of minor units")
	ErrInvalidCurrency    = errors.New("currency must be a three letter ISO code")
)
