package bootstrap

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
