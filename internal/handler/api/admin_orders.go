package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	reqdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/request"
	resdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/response"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/httperr"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderAdminHandler struct {
	fulfillment commands.FulfillmentCommands
	alerts      commands.AlertCommands
	orders      queries.OrderQueries
	alertViews  queries.AlertQueries
	analytics   queries.AnalyticsQueries
}

func NewOrderAdminHandler(
	fulfillment commands.FulfillmentCommands,
	alerts commands.AlertCommands,
	orders queries.OrderQueries,
	alertViews queries.AlertQueries,
	analytics queries.AnalyticsQueries,
) *OrderAdminHandler {
	return &OrderAdminHandler{
		fulfillment: fulfillment,
		alerts:      alerts,
		orders:      orders,
		alertViews:  alertViews,
		analytics:   analytics,
	}
}

// @Summary List orders
// @Description Newest first with keyset pagination
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param limit query int false "Max items (default 200)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/api/orders [get]
func (h *OrderAdminHandler) ListOrders(c *gin.Context) {
	limit := queries.MaxOrderListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	orders, next, err := h.orders.List(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	setNextCursor(c, next)
	c.JSON(http.StatusOK, resdto.FromOrders(orders))
}

// @Summary Get order
// @Description One order with its bound code and delivery attempts
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} resdto.OrderDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /admin/api/orders/{sessionId} [get]
func (h *OrderAdminHandler) GetOrder(c *gin.Context) {
	detail, err := h.orders.GetBySessionID(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		if errs.Is(err, errs.ErrOrderNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderDetail(detail))
}

// @Summary Retry fulfillment
// @Description Re-run the claim for an order that hit a stockout, after restocking
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param sessionId path string true "Checkout session ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/api/orders/{sessionId}/retry-fulfillment [post]
func (h *OrderAdminHandler) RetryFulfillment(c *gin.Context) {
	result, err := h.fulfillment.RetryFulfillment(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, commands.ErrNotRetryable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is not waiting for restock", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

// @Summary Resend code
// @Description Queue and attempt another delivery of the code bound to the order
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param sessionId path string true "Checkout session ID"
// @Param request body reqdto.ResendCodeRequest false "Optional new address"
// @Success 202 {object} resdto.ResendResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/api/orders/{sessionId}/resend [post]
func (h *OrderAdminHandler) ResendCode(c *gin.Context) {
	var req reqdto.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.fulfillment.ResendCode(c.Request.Context(), c.Param("sessionId"), req.Email)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
		case errs.Is(err, errs.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errs.Is(err, commands.ErrNotFulfilled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order has no code yet", nil)
		case errs.Is(err, commands.ErrNoRecipient):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No email address on the order", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusAccepted, resdto.ResendResponse{
		DeliveryJobID: result.DeliveryJobID,
		Recipient:     result.Recipient,
		Status:        result.Status.String(),
	})
}

// @Summary Sales analytics
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Success 200 {object} resdto.AnalyticsResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/api/analytics [get]
func (h *OrderAdminHandler) Analytics(c *gin.Context) {
	summary, err := h.analytics.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "analytics error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAnalytics(summary))
}

// @Summary List fulfillment alerts
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param open query bool false "Only unresolved alerts (default true)"
// @Success 200 {array} resdto.AlertResponse
// @Router /admin/api/alerts [get]
func (h *OrderAdminHandler) ListAlerts(c *gin.Context) {
	openOnly := true
	if v := c.Query("open"); v != "" {
		if b, e := strconv.ParseBool(v); e == nil {
			openOnly = b
		}
	}

	alerts, err := h.alertViews.List(c.Request.Context(), openOnly)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAlerts(alerts))
}

// @Summary Resolve alert
// @Tags admin
// @Security BasicAuth
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/alerts/{id}/resolve [post]
func (h *OrderAdminHandler) ResolveAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.alerts.Resolve(c.Request.Context(), id); err != nil {
		if errs.Is(err, commands.ErrAlertNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Alert not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
