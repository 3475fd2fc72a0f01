package stripe

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const sessionIDPlaceholder = "?session_id={CHECKOUT_SESSION_ID}"

type CheckoutConfig struct {
	SecretKey  string
	SuccessURL string
	CancelURL  string
}

// SessionCreator opens hosted Checkout pages. The product id and buyer email
// ride along as session metadata so the webhook can reconcile them.
type SessionCreator struct {
	api    *client.API
	cfg    CheckoutConfig
	logger *slog.Logger
}

func NewSessionCreator(cfg CheckoutConfig, logger *slog.Logger) *SessionCreator {
	s := &SessionCreator{cfg: cfg, logger: logger}
	if cfg.SecretKey != "" {
		s.api = client.New(cfg.SecretKey, nil)
	}
	return s
}

func (s *SessionCreator) CreateSession(ctx context.Context, req commands.CheckoutRequest) (*commands.CheckoutSession, error) {
	if s.api == nil {
		return nil, commands.ErrPaymentProviderUnavailable
	}

	productData := &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
		Name: stripego.String(req.ProductName),
	}
	if req.Description != "" {
		productData.Description = stripego.String(req.Description)
	}

	params := &stripego.CheckoutSessionParams{
		Mode:               stripego.String(string(stripego.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
		LineItems: []*stripego.CheckoutSessionLineItemParams{
			{
				PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
					Currency:    stripego.String(req.Currency),
					ProductData: productData,
					UnitAmount:  stripego.Int64(req.AmountMinor),
				},
				Quantity: stripego.Int64(1),
			},
		},
		SuccessURL: stripego.String(s.cfg.SuccessURL + sessionIDPlaceholder),
		CancelURL:  stripego.String(s.cfg.CancelURL),
	}
	params.Context = ctx
	params.AddMetadata(MetadataProductID, req.ProductID.String())
	params.AddMetadata(MetadataBuyerEmail, req.BuyerEmail)
	if req.BuyerEmail != "" {
		params.CustomerEmail = stripego.String(req.BuyerEmail)
	}

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		s.logger.Error("stripe checkout session creation failed",
			"product_id", req.ProductID.String(),
			"error", err.Error())
		return nil, errs.Wrap(err, "create checkout session")
	}

	return &commands.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}
