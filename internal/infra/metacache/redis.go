package metacache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"trainhub/internal/infra/commerce"
	"trainhub/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

// RedisCache keeps commerce platform metadata warm between reads. Entries
// expire on a short TTL; staleness is acceptable, an extra platform round trip
// is what the cache saves.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func NewClient(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}

func metaKey(productRef int64) string {
	return fmt.Sprintf("bundle:meta:%d", productRef)
}

func (c *RedisCache) Get(ctx context.Context, productRef int64) (commerce.Metadata, bool, error) {
	raw, err := c.client.Get(ctx, metaKey(productRef)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var meta commerce.Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, false, err
	}
	return meta, true, nil
}

func (c *RedisCache) Set(ctx context.Context, productRef int64, meta commerce.Metadata) error {
	raw, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, metaKey(productRef), raw, c.ttl).Err()
}
