package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/revanth-raj24/AlmirahShop/models"
)

// CartCache caches the assembled cart view in Redis. Any cart mutation
// invalidates the key; reads fall back to Postgres on a miss.
type CartCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartCache(client *redis.Client, ttl time.Duration) *CartCache {
	return &CartCache{client: client, ttl: ttl}
}

func (c *CartCache) key(userID string) string {
	return fmt.Sprintf("cart:user:%s", userID)
}

func (c *CartCache) Get(ctx context.Context, userID string) (*models.CartView, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var view models.CartView
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (c *CartCache) Set(ctx context.Context, userID string, view *models.CartView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(userID), data, c.ttl).Err()
}

func (c *CartCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
