package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"pos_terminal/internal/cart"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrCartNotFound = errors.New("cart not found")

const cartKeyPrefix = "cart:"

type Client struct {
	rdb *redis.Client
}

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

// Cart sessions
func (c *Client) SetCart(ctx context.Context, cartID string, data *cart.Cart, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, cartKeyPrefix+cartID, jsonData, ttl).Err()
}

func (c *Client) GetCart(ctx context.Context, cartID string) (*cart.Cart, error) {
	val, err := c.rdb.Get(ctx, cartKeyPrefix+cartID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var data cart.Cart
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}
	if data.Items == nil {
		data.Items = []cart.Line{}
	}

	return &data, nil
}

// DeleteCart reports whether a cart was stored under cartID.
func (c *Client) DeleteCart(ctx context.Context, cartID string) (bool, error) {
	n, err := c.rdb.Del(ctx, cartKeyPrefix+cartID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to delete cart: %w", err)
	}
	return n > 0, nil
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
