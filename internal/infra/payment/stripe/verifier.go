package stripe

import (
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/domain/payment"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	MetadataProductID  = "product_id"
	MetadataBuyerEmail = "buyer_email"
)

// Verifier authenticates Stripe webhook deliveries. With an empty secret it
// decodes payloads unverified and logs a warning each time; config
// validation keeps that out of production.
type Verifier struct {
	secret    string
	tolerance time.Duration
	logger    *slog.Logger
}

func NewVerifier(secret string, tolerance time.Duration, logger *slog.Logger) *Verifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Verifier{secret: secret, tolerance: tolerance, logger: logger}
}

func (v *Verifier) Verify(payload []byte, signature string) (payment.Event, error) {
	var (
		evt stripego.Event
		err error
	)

	if v.secret == "" {
		v.logger.Warn("webhook secret not configured; accepting unsigned payment event")
		if err = json.Unmarshal(payload, &evt); err != nil {
			return nil, errs.Mark(err, errs.ErrPayloadMalformed)
		}
	} else {
		evt, err = webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
			Tolerance:                v.tolerance,
			IgnoreAPIVersionMismatch: true,
		})
		if err != nil {
			if isSignatureError(err) {
				return nil, errs.Mark(err, errs.ErrSignatureInvalid)
			}
			return nil, errs.Mark(err, errs.ErrPayloadMalformed)
		}
	}

	return decodeEvent(evt)
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

func decodeEvent(evt stripego.Event) (payment.Event, error) {
	if evt.ID == "" || evt.Type == "" {
		return nil, errs.Mark(errs.New("event id or type missing"), errs.ErrPayloadMalformed)
	}

	typ := string(evt.Type)
	if typ != payment.TypeCheckoutSessionCompleted && typ != payment.TypeCheckoutAsyncPaymentSucceeded {
		return payment.Ignored{ID: evt.ID, Type: typ}, nil
	}

	if evt.Data == nil || len(evt.Data.Raw) == 0 {
		return nil, errs.Mark(errs.New("event has no data object"), errs.ErrPayloadMalformed)
	}
	var session stripego.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
		return nil, errs.Mark(err, errs.ErrPayloadMalformed)
	}
	if strings.TrimSpace(session.ID) == "" {
		return nil, errs.Mark(errs.New("checkout session id missing"), errs.ErrPayloadMalformed)
	}

	// A completed async session may still be waiting on the bank; its
	// async_payment_succeeded event follows.
	if typ == payment.TypeCheckoutSessionCompleted && !paid(session.PaymentStatus) {
		return payment.Ignored{ID: evt.ID, Type: typ}, nil
	}

	completed := payment.PaymentCompleted{
		ID:        evt.ID,
		SessionID: session.ID,
		Livemode:  evt.Livemode,
	}
	if session.Metadata != nil {
		completed.ProductID = session.Metadata[MetadataProductID]
		completed.BuyerEmail = session.Metadata[MetadataBuyerEmail]
	}
	if session.CustomerDetails != nil {
		completed.CustomerEmail = session.CustomerDetails.Email
	}
	if completed.CustomerEmail == "" {
		completed.CustomerEmail = session.CustomerEmail
	}

	return completed, nil
}

func paid(status stripego.CheckoutSessionPaymentStatus) bool {
	switch status {
	case "", stripego.CheckoutSessionPaymentStatusPaid, stripego.CheckoutSessionPaymentStatusNoPaymentRequired:
		return true
	default:
		return false
	}
}
