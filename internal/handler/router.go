package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/api"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/middleware"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/metrics"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
)

const tracerName = "wassce-checker/http"

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine        *gin.Engine
	Config        config.Config
	Logger        *slog.Logger
	RequestLogger *middleware.Logger
	Metrics       *metrics.Prometheus

	Storefront   *api.StorefrontHandler
	Webhook      *api.WebhookHandler
	AdminAuth    *api.AdminAuthHandler
	CatalogAdmin *api.CatalogAdminHandler
	OrderAdmin   *api.OrderAdminHandler
	AdminMw      *middleware.AdminAuthMiddleware
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery(p.Logger))
	p.Engine.Use(middleware.Tracing(tracerName))
	p.Engine.Use(p.Metrics.Middleware())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS, p.Logger))
	p.Engine.Use(p.RequestLogger.LoggingMiddleware())
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Signature verification needs the raw body, so nothing may read it first.
	engine.POST("/webhook", p.Webhook.Receive)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/products", Handler: p.Storefront.ListProducts},
			{Method: http.MethodPost, Path: "/create-checkout-session", Handler: p.Storefront.CreateCheckoutSession},
		})
	}

	admin := engine.Group("/admin/api")
	{
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/login", Handler: p.AdminAuth.Login},
			{Method: http.MethodPost, Path: "/logout", Handler: p.AdminAuth.Logout},
		})

		authRequired := admin.Group("")
		authRequired.Use(p.AdminMw.RequireAdmin())
		addRoutes(authRequired, []route{
			{Method: http.MethodPost, Path: "/product", Handler: p.CatalogAdmin.CreateProduct},
			{Method: http.MethodPost, Path: "/upload-codes", Handler: p.CatalogAdmin.UploadCodes},
			{Method: http.MethodGet, Path: "/codes", Handler: p.CatalogAdmin.ListCodes},
			{Method: http.MethodGet, Path: "/orders", Handler: p.OrderAdmin.ListOrders},
			{Method: http.MethodGet, Path: "/orders/:sessionId", Handler: p.OrderAdmin.GetOrder},
			{Method: http.MethodPost, Path: "/orders/:sessionId/retry-fulfillment", Handler: p.OrderAdmin.RetryFulfillment},
			{Method: http.MethodPost, Path: "/orders/:sessionId/resend", Handler: p.OrderAdmin.ResendCode},
			{Method: http.MethodGet, Path: "/analytics", Handler: p.OrderAdmin.Analytics},
			{Method: http.MethodGet, Path: "/alerts", Handler: p.OrderAdmin.ListAlerts},
			{Method: http.MethodPost, Path: "/alerts/:id/resolve", Handler: p.OrderAdmin.ResolveAlert},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
