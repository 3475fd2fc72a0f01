package components

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/api"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/middleware"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewStorefrontHandler,
		api.NewWebhookHandler,
		api.NewAdminAuthHandler,
		api.NewCatalogAdminHandler,
		api.NewOrderAdminHandler,
		middleware.NewAdminAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
