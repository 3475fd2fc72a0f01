package bootstrap

import (
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/handler/middleware"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewRequestLogger,
		NewLogger,
	),
)

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewLogger(l *middleware.Logger) *slog.Logger {
	logger := l.GetSlogLogger()
	slog.SetDefault(logger)
	return logger
}
