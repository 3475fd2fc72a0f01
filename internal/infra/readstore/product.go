package readstore

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/db"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const productColumns = `
SELECT p.id, p.name, p.description, p.price_minor, p.currency,
       (SELECT COUNT(*) FROM codes c WHERE c.product_id = p.id AND c.sold = false) AS available,
       p.created_at
FROM products p`

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(db db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: db}
}

func (s *ProductReadStore) List(ctx context.Context) ([]*readmodel.ProductRM, error) {
	rows, err := s.db.Query(ctx, productColumns+` ORDER BY p.created_at, p.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	products := []*readmodel.ProductRM{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	return products, nil
}

func (s *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error) {
	p, err := scanProduct(s.db.QueryRow(ctx, productColumns+` WHERE p.id = $1`, id))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find product", err)
	}
	return p, nil
}

func scanProduct(row rowScanner) (*readmodel.ProductRM, error) {
	var p readmodel.ProductRM
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.PriceMinor, &p.Currency, &p.Available, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}
