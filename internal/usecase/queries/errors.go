package queries

import "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"

var ErrInvalidCursor = errs.New("invalid cursor")
