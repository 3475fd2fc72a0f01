package api

import (
	"net/http"
	"time"

	reqdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/request"
	resdto "github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/dto/response"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/httperr"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/cookie"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminAuthHandler struct {
	auth      commands.AdminAuthCommands
	cookieCfg config.CookieConfig
}

func NewAdminAuthHandler(auth commands.AdminAuthCommands, cookieCfg config.CookieConfig) *AdminAuthHandler {
	return &AdminAuthHandler{auth: auth, cookieCfg: cookieCfg}
}

// @Summary Admin login
// @Description Exchange operator credentials for a bearer token; also set as an HttpOnly cookie
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/api/login [post]
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errs.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.AccessToken, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description Clear the admin cookie. Bearer tokens simply expire.
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/api/logout [post]
func (h *AdminAuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
