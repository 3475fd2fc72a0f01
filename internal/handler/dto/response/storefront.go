package response

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ProductResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	Available   int64     `json:"available"`
}

func FromProduct(rm *readmodel.ProductRM) ProductResponse {
	var res ProductResponse
	_ = copier.Copy(&res, rm)
	res.PriceCents = rm.PriceMinor
	return res
}

func FromProducts(rms []*readmodel.ProductRM) []ProductResponse {
	res := make([]ProductResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromProduct(rm)
	}
	return res
}

type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"sessionId"`
}

func FromCheckoutResult(r *commands.CreateCheckoutResult) CheckoutResponse {
	return CheckoutResponse{URL: r.URL, SessionID: r.SessionID}
}

type WebhookResponse struct {
	Received bool   `json:"received"`
	Outcome  string `json:"outcome,omitempty"`
}
