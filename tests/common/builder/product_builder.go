//go:build unit || e2e

package builder

import (
	"time"

	reqdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/request"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProductBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceMinor  int64
	Currency    string
	Available   int64
	CreatedAt   time.Time
}

func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		ID:          uuid.New(),
		Name:        "WASSCE Result Checker",
		Description: "One scratch card PIN and serial",
		PriceMinor:  2500,
		Currency:    "ghs",
		Available:   10,
		CreatedAt:   time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ProductBuilder) With(mutate func(*ProductBuilder)) *ProductBuilder {
	mutate(b)
	return b
}

func (b *ProductBuilder) BuildReadModel() *readmodel.ProductRM {
	return &readmodel.ProductRM{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		PriceMinor:  b.PriceMinor,
		Currency:    b.Currency,
		Available:   b.Available,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *ProductBuilder) BuildCreateRequestDTO() reqdto.CreateProductRequest {
	return reqdto.CreateProductRequest{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  b.PriceMinor,
		Currency:    b.Currency,
	}
}
