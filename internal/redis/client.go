package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client wraps the redis connection used for refresh-token storage and
// the public customer-menu cache.
type Client struct {
	rdb *redis.Client
}

const customerMenuKey = "menu:customer"

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Refresh token storage

func (c *Client) SaveRefreshToken(tokenID string, userID uint, ttl time.Duration) error {
	ctx := context.Background()
	return c.rdb.Set(ctx, "refresh:"+tokenID, userID, ttl).Err()
}

func (c *Client) GetRefreshTokenUser(tokenID string) (uint, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "refresh:"+tokenID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, fmt.Errorf("refresh token not found")
		}
		return 0, fmt.Errorf("failed to get refresh token: %w", err)
	}
	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("corrupt refresh token entry: %w", err)
	}
	return uint(userID), nil
}

func (c *Client) DeleteRefreshToken(tokenID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "refresh:"+tokenID).Err()
}

// Customer menu cache

func (c *Client) GetCustomerMenu(dest interface{}) (bool, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, customerMenuKey).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get customer menu: %w", err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal customer menu: %w", err)
	}
	return true, nil
}

func (c *Client) SetCustomerMenu(menu interface{}) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(menu)
	if err != nil {
		return fmt.Errorf("failed to marshal customer menu: %w", err)
	}
	return c.rdb.Set(ctx, customerMenuKey, jsonData, 5*time.Minute).Err()
}

func (c *Client) InvalidateCustomerMenu() error {
	ctx := context.Background()
	return c.rdb.Del(ctx, customerMenuKey).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
