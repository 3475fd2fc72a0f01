package bootstrap

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Invoke(startDispatcher),
)

func startDispatcher(lc fx.Lifecycle, cfg config.Config, deliveries commands.DeliveryCommands, logger *slog.Logger) {
	if !cfg.Delivery.Worker {
		logger.Info("delivery worker disabled")
		return
	}

	d := worker.NewDispatcher(deliveries, cfg.Delivery.PollInterval, cfg.Delivery.BatchSize, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return d.Stop(ctx)
		},
	})
}
