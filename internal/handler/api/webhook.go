package api

import (
	"io"
	"net/http"

	resdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/response"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/httperr"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "Stripe-Signature"
	// Stripe caps event payloads well below this.
	maxWebhookBody = 1 << 20
)

type WebhookHandler struct {
	events commands.PaymentEventCommands
}

func NewWebhookHandler(events commands.PaymentEventCommands) *WebhookHandler {
	return &WebhookHandler{events: events}
}

// @Summary Payment provider webhook
// @Description Verify a signed payment event and fulfil the paid order. Anything but a verification fault or a storage outage is acknowledged with 200.
// @Tags webhook
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} resdto.WebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	// The signature covers the exact bytes, so the body is never re-encoded.
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBody))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: unreadable body", nil)
		return
	}

	result, err := h.events.Handle(c.Request.Context(), payload, c.GetHeader(signatureHeader))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrSignatureInvalid):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: invalid signature", nil)
		case errs.Is(err, errs.ErrPayloadMalformed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Webhook Error: malformed payload", nil)
		default:
			// Nothing was committed; the provider retries.
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookResponse{Received: true, Outcome: string(result.Outcome)})
}
