package fulfillment

// Outcome is the result of reconciling one payment confirmation.
type Outcome string

const (
	// A code was claimed and the order marked fulfilled.
	OutcomeFulfilled Outcome = "fulfilled"
	// The order was already fulfilled; nothing changed.
	OutcomeDuplicate Outcome = "duplicate"
	// No order exists for the session.
	OutcomeUnknownSession Outcome = "unknown_session"
	// No unused code was left; an operator alert was raised.
	OutcomeStockout Outcome = "stockout"
	// A previous confirmation already hit a stockout for this order.
	OutcomeStockoutPending Outcome = "stockout_pending"
)

func (o Outcome) String() string { return string(o) }

// Claimed reports whether this outcome bound a code to the order.
func (o Outcome) Claimed() bool { return o == OutcomeFulfilled }
