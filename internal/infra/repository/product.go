package repository

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/product"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"

	"github.com/google/uuid"
)

const insertProduct = `
INSERT INTO products (id, name, description, price_minor, currency, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertProduct,
		p.ID(),
		p.Name(),
		p.Description(),
		p.Price().Minor(),
		p.Price().Currency(),
		p.CreatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}

	return id, nil
}
