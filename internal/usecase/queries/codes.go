package queries

//go:generate mockgen -source=codes.go -destination=../../../tests/mock/queries/codes_mock.go -package=queriesmock

import (
	"context"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
)

const MaxCodeListLimit = 500

type CodeReadStore interface {
	List(ctx context.Context, productID *uuid.UUID, after *readmodel.Keyset, limit int32) ([]*readmodel.CodeRM, error)
}

type CodeQueries interface {
	List(ctx context.Context, productID *uuid.UUID, cursor *Cursor, limit int) ([]*readmodel.CodeRM, *Cursor, error)
}

type codeQueriesImpl struct {
	store CodeReadStore
}

func NewCodeQueries(store CodeReadStore) CodeQueries {
	return &codeQueriesImpl{store: store}
}

func (q *codeQueriesImpl) List(ctx context.Context, productID *uuid.UUID, cursor *Cursor, limit int) ([]*readmodel.CodeRM, *Cursor, error) {
	after, err := cursor.Keyset()
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit, MaxCodeListLimit)

	rows, err := q.store.List(ctx, productID, after, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
