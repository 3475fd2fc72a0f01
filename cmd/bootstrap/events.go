package bootstrap

import (
	"context"
	"log/slog"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/cache"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/infra/eventbus/kafka"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/config"
	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventDeduper,
		NewOutcomePublisher,
	),
)

func NewEventDeduper(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.EventDeduper {
	if cfg.Redis.Addr == "" {
		return cache.NopEventDeduper{}
	}

	rdb := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			// Redis only short-cuts replays, so an outage here is not fatal.
			if err := rdb.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable, event cache degraded", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return cache.NewRedisEventDeduper(rdb, cfg.Redis.EventTTL)
}

func NewOutcomePublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.OutcomePublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return kafka.NopOutcomePublisher{}
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Buffer, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			producer.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			producer.Close()
			select {
			case <-waitClosed(producer):
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
	return kafka.NewOutcomePublisher(producer, logger)
}

func waitClosed(p *kafka.Producer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	return done
}
