package api

import (
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

type CatalogAdminHandler struct {
	catalog   commands.CatalogCommands
	inventory commands.InventoryCommands
	codes     queries.CodeQueries
}

func NewCatalogAdminHandler(catalog commands.CatalogCommands, inventory commands.InventoryCommands, codes queries.CodeQueries) *CatalogAdminHandler {
	return &CatalogAdminHandler{catalog: catalog, inventory: inventory, codes: codes}
}

// @Summary Create product
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param request body reqdto.CreateProductRequest true "Product"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/api/product [post]
func (h *CatalogAdminHandler) CreateProduct(c *gin.Context) {
	var req reqdto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing fields", nil)
		return
	}

	id, err := h.catalog.CreateProduct(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{OK: true, ID: id})
}

// @Summary Upload codes
// @Description Add checker codes for a product. Codes already stored are skipped.
// @Tags admin
// @Accept json
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param request body reqdto.UploadCodesRequest true "Codes"
// @Success 200 {object} resdto.UploadCodesResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/api/upload-codes [post]
func (h *CatalogAdminHandler) UploadCodes(c *gin.Context) {
	var req reqdto.UploadCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing data", nil)
		return
	}

	result, err := h.inventory.UploadCodes(c.Request.Context(), req.ProductID, req.Codes)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrEmptyUpload):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No codes in upload", nil)
		case errs.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUploadResult(result))
}

// @Summary List codes
// @Description Newest first, optionally for one product, with keyset pagination
// @Tags admin
// @Produce json
// @Security BasicAuth
// @Security BearerAuth
// @Param productId query string false "Product ID"
// @Param limit query int false "Max items (default 500)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {array} resdto.CodeResponse
// @Failure 400 {object} httperr.Response
// @Router /admin/api/codes [get]
func (h *CatalogAdminHandler) ListCodes(c *gin.Context) {
	var productID *uuid.UUID
	if v := c.Query("productId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product id", nil)
			return
		}
		productID = &id
	}

	limit := queries.MaxCodeListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = iv
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	codes, next, err := h.codes.List(c.Request.Context(), productID, cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	setNextCursor(c, next)
	c.JSON(http.StatusOK, resdto.FromCodes(codes))
}

// The original admin UI expects bare arrays, so the cursor travels in a header.
const nextCursorHeader = "X-Next-Cursor"

func setNextCursor(c *gin.Context, next *queries.Cursor) {
	if next != nil {
		c.Header(nextCursorHeader, next.After)
	}
}
