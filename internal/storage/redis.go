package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"kitchen-pos/internal/domain"
)

const menuCacheKey = "menus:all"

type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) GetMenus(ctx context.Context) ([]domain.Menu, bool) {
	payload, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var menus []domain.Menu
	if err := json.Unmarshal(payload, &menus); err != nil {
		return nil, false
	}
	return menus, true
}

func (c *RedisMenuCache) SetMenus(ctx context.Context, menus []domain.Menu) error {
	payload, err := json.Marshal(menus)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuCacheKey, payload, c.TTL).Err()
}

func (c *RedisMenuCache) InvalidateMenus(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}
