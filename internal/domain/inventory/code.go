package inventory

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxCodeLength = 128

// Code is one sellable access code. Sold, SoldAt, OrderID and BuyerEmail are
// only ever set together, by the claim.
type Code struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Value      string
	Sold       bool
	SoldAt     *time.Time
	OrderID    *uuid.UUID
	BuyerEmail *string
	CreatedAt  time.Time
}

// Batch is the cleaned result of an upload.
type Batch struct {
	Codes   []string
	Skipped int
}

// NormalizeBatch trims every entry and drops blanks, oversized entries and
// repeats inside the batch. Order of first appearance is kept so the oldest
// codes in a file are sold first.
func NormalizeBatch(raw []string) Batch {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	skipped := 0

	for _, r := range raw {
		c := strings.TrimSpace(r)
		if c == "" || len(c) > MaxCodeLength {
			skipped++
			continue
		}
		if _, dup := seen[c]; dup {
			skipped++
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	return Batch{Codes: out, Skipped: skipped}
}

// SplitLines accepts the textarea/CSV style upload used by the admin page.
func SplitLines(blob string) []string {
	return strings.FieldsFunc(blob, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
}
