package queries

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog_mock.go -package=queriesmock

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ProductReadStore interface {
	List(ctx context.Context) ([]*readmodel.ProductRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
}

type CatalogQueries interface {
	ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error)
}

type catalogQueriesImpl struct {
	store ProductReadStore
}

func NewCatalogQueries(store ProductReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListProducts(ctx context.Context) ([]*readmodel.ProductRM, error) {
	return q.store.List(ctx)
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id uuid.UUID) (*readmodel.ProductRM, error) {
	p, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}
