package product

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	id          uuid.UUID
	name        Name
	description string
	price       Price
	createdAt   time.Time
}

func NewProduct(name, description string, priceMinor int64, currency string, now time.Time) (*Product, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	desc := strings.TrimSpace(description)
	if len([]rune(desc)) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	price, err := NewPrice(priceMinor, currency)
	if err != nil {
		return nil, err
	}

	return &Product{
		id:          uuid.New(),
		name:        n,
		description: desc,
		price:       price,
		createdAt:   now,
	}, nil
}

func (p *Product) ID() uuid.UUID        { return p.id }
func (p *Product) Name() string         { return p.name.String() }
func (p *Product) Description() string  { return p.description }
func (p *Product) Price() Price         { return p.price }
func (p *Product) CreatedAt() time.Time { return p.createdAt }
