package payment

// Provider event types that complete a checkout.
const (
	TypeCheckoutSessionCompleted      = "checkout.session.completed"
	TypeCheckoutAsyncPaymentSucceeded = "checkout.session.async_payment_succeeded"
)

// Event is a verified, decoded provider callback. It is either a
// PaymentCompleted or an Ignored.
type Event interface {
	EventID() string
	isEvent()
}

// PaymentCompleted carries the fields reconciliation needs. ProductID and
// BuyerEmail come from session metadata set at checkout; CustomerEmail is
// whatever the buyer typed on the hosted payment page.
type PaymentCompleted struct {
	ID            string
	SessionID     string
	ProductID     string
	BuyerEmail    string
	CustomerEmail string
	Livemode      bool
}

func (e PaymentCompleted) EventID() string { return e.ID }
func (PaymentCompleted) isEvent()          {}

// Ignored is any well-formed event that does not complete a payment.
type Ignored struct {
	ID   string
	Type string
}

func (e Ignored) EventID() string { return e.ID }
func (Ignored) isEvent()          {}
