package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/afterclass/ecommerce-api/internal/core/domain"
)

const userListKey = "users:all"
const userListTTL = 30 * time.Second

// UserCache caches the full user listing for a short window. Entries are
// stored as the JSON representation of the users, which excludes hash
// material, so no password data ever lands in Redis.
type UserCache struct {
	client *redis.Client
}

func NewUserCache(client *redis.Client) *UserCache {
	return &UserCache{client: client}
}

// Get returns the cached listing, or (nil, nil) when the key is absent.
func (c *UserCache) Get(ctx context.Context) ([]domain.User, error) {
	raw, err := c.client.Get(ctx, userListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return users, nil
}

func (c *UserCache) Set(ctx context.Context, users []domain.User) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, userListKey, raw, userListTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (c *UserCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, userListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}
