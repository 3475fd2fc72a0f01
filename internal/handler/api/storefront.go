package api

import (
	"net/http"

	reqdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/request"
	resdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/response"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/httperr"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StorefrontHandler struct {
	checkout commands.CheckoutCommands
	catalog  queries.CatalogQueries
}

func NewStorefrontHandler(checkout commands.CheckoutCommands, catalog queries.CatalogQueries) *StorefrontHandler {
	return &StorefrontHandler{checkout: checkout, catalog: catalog}
}

// @Summary List products
// @Description List products with the number of unused codes left
// @Tags storefront
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Failure 500 {object} httperr.Response
// @Router /api/products [get]
func (h *StorefrontHandler) ListProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(products))
}

// @Summary Create checkout session
// @Description Open a hosted payment page for one checker code
// @Tags storefront
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/create-checkout-session [post]
func (h *StorefrontHandler) CreateCheckoutSession(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.checkout.CreateSession(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
		case errs.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errs.Is(err, errs.ErrOutOfStock):
			httperr.AbortWithError(c, http.StatusConflict, err, "Product is out of stock", nil)
		case errs.Is(err, errs.ErrDuplicateSession):
			httperr.AbortWithError(c, http.StatusConflict, err, "Checkout session already exists", nil)
		case errs.Is(err, commands.ErrPaymentProviderUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payments are not available", nil)
		case errs.Is(err, commands.ErrPaymentProviderFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment provider error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
