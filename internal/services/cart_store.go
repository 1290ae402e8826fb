package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"pos_terminal/internal/cart"
	"pos_terminal/internal/redis"
)

// CartStore keeps one cart per session id.
type CartStore interface {
	Load(ctx context.Context, cartID string) (*cart.Cart, error)
	Save(ctx context.Context, cartID string, c *cart.Cart) error
	Delete(ctx context.Context, cartID string) (bool, error)
}

type memoryCartStore struct {
	mu    sync.Mutex
	carts map[string][]cart.Line
}

// NewMemoryCartStore keeps carts in process memory for the life of the server.
func NewMemoryCartStore() CartStore {
	return &memoryCartStore{carts: make(map[string][]cart.Line)}
}

func (s *memoryCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	c := cart.New()
	c.Items = append(c.Items, lines...)
	return c, nil
}

func (s *memoryCartStore) Save(ctx context.Context, cartID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[cartID] = c.Lines()
	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, cartID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.carts[cartID]
	delete(s.carts, cartID)
	return ok, nil
}

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore keeps carts in Redis; each save refreshes the ttl.
func NewRedisCartStore(client *redis.Client, ttl time.Duration) CartStore {
	return &redisCartStore{client: client, ttl: ttl}
}

func (s *redisCartStore) Load(ctx context.Context, cartID string) (*cart.Cart, error) {
	c, err := s.client.GetCart(ctx, cartID)
	if errors.Is(err, redis.ErrCartNotFound) {
		return nil, ErrCartNotFound
	}
	return c, err
}

func (s *redisCartStore) Save(ctx context.Context, cartID string, c *cart.Cart) error {
	return s.client.SetCart(ctx, cartID, c, s.ttl)
}

func (s *redisCartStore) Delete(ctx context.Context, cartID string) (bool, error) {
	return s.client.DeleteCart(ctx, cartID)
}
