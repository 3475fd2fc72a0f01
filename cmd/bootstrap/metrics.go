package bootstrap

import (
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/metrics"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewPrometheus,
		func(p *metrics.Prometheus) commands.Metrics { return p },
	),
)
