package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/cookie"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminAuthMiddleware struct {
	auth   commands.AdminAuthCommands
	logger *slog.Logger
}

const (
	ctxOperatorKey = "operator"
	basicRealm     = `Basic realm="admin"`
)

func NewAdminAuthMiddleware(auth commands.AdminAuthCommands, logger *slog.Logger) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{
		auth:   auth,
		logger: logger,
	}
}

// RequireAdmin accepts the admin cookie, a bearer token, or HTTP Basic
// credentials, in that order.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.GetAdminToken(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token != "" {
			operator, err := m.auth.ValidateToken(token)
			if err != nil {
				m.logger.Warn("admin token validation failed", "error", err.Error())
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
				c.Abort()
				return
			}
			setOperator(c, operator)
			c.Next()
			return
		}

		username, plain, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", basicRealm)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}
		if err := m.auth.Authenticate(username, plain); err != nil {
			m.logger.Warn("admin basic auth rejected", "username", username)
			c.Header("WWW-Authenticate", basicRealm)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid credentials",
			})
			c.Abort()
			return
		}

		setOperator(c, username)
		c.Next()
	}
}

func setOperator(c *gin.Context, operator string) {
	c.Set(ctxOperatorKey, operator)
}

func GetOperator(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	operator, ok := v.(string)
	return operator, ok
}
