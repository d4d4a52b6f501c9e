package cache

import (
	"context"
	"time"

	"github.com/pixellake/mcgate/config"
	"github.com/redis/go-redis/v9"
)

// WhitelistCache mirrors the active whitelist names in Redis so existence
// checks and the dashboard cache status never hit Postgres.
type WhitelistCache interface {
	Refresh(ctx context.Context, names []string) error
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
	Contains(ctx context.Context, name string) (bool, error)
	Size(ctx context.Context) (int64, error)
	LastRefresh(ctx context.Context) (time.Time, error)
	Loaded(ctx context.Context) (bool, error)
}

type whitelistCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func NewWhitelistCache(client *redis.Client) WhitelistCache {
	return &whitelistCache{
		client: client,
		ttl:    24 * time.Hour,
	}
}

// Key helpers
func (c *whitelistCache) namesKey() string {
	return "whitelist:names"
}

func (c *whitelistCache) refreshKey() string {
	return "whitelist:last_refresh"
}

func (c *whitelistCache) Refresh(ctx context.Context, names []string) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, c.namesKey())
	if len(names) > 0 {
		members := make([]interface{}, len(names))
		for i, n := range names {
			members[i] = n
		}
		pipe.SAdd(ctx, c.namesKey(), members...)
	}
	pipe.Expire(ctx, c.namesKey(), c.ttl)
	pipe.Set(ctx, c.refreshKey(), time.Now().Format(time.RFC3339), c.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *whitelistCache) Add(ctx context.Context, name string) error {
	return c.client.SAdd(ctx, c.namesKey(), name).Err()
}

func (c *whitelistCache) Remove(ctx context.Context, name string) error {
	return c.client.SRem(ctx, c.namesKey(), name).Err()
}

func (c *whitelistCache) Contains(ctx context.Context, name string) (bool, error) {
	return c.client.SIsMember(ctx, c.namesKey(), name).Result()
}

func (c *whitelistCache) Size(ctx context.Context) (int64, error) {
	return c.client.SCard(ctx, c.namesKey()).Result()
}

func (c *whitelistCache) LastRefresh(ctx context.Context) (time.Time, error) {
	raw, err := c.client.Get(ctx, c.refreshKey()).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}

func (c *whitelistCache) Loaded(ctx context.Context) (bool, error) {
	n, err := c.client.Exists(ctx, c.namesKey()).Result()
	return n > 0, err
}
