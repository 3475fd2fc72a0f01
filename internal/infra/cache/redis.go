package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/fredricksonsuccess129-spec/wassce-checker-site/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const (
	// dedup:webhook:{event_id} -> "1"
	keyWebhookDedup = "dedup:webhook:%s"

	defaultEventTTL = 72 * time.Hour
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
}

// RedisEventDeduper records processed provider event ids with a TTL.
type RedisEventDeduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisEventDeduper(rdb *redis.Client, ttl time.Duration) *RedisEventDeduper {
	if ttl <= 0 {
		ttl = defaultEventTTL
	}
	return &RedisEventDeduper{rdb: rdb, ttl: ttl}
}

func (d *RedisEventDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	n, err := d.rdb.Exists(ctx, webhookKey(eventID)).Result()
	if err != nil {
		return false, errs.Wrap(err, "redis exists")
	}
	return n > 0, nil
}

func (d *RedisEventDeduper) Remember(ctx context.Context, eventID string) error {
	if err := d.rdb.Set(ctx, webhookKey(eventID), "1", d.ttl).Err(); err != nil {
		return errs.Wrap(err, "redis set")
	}
	return nil
}

func webhookKey(eventID string) string {
	return fmt.Sprintf(keyWebhookDedup, eventID)
}

// NopEventDeduper never reports an event as seen.
type NopEventDeduper struct{}

func (NopEventDeduper) Seen(context.Context, string) (bool, error) { return false, nil }
func (NopEventDeduper) Remember(context.Context, string) error     { return nil }
