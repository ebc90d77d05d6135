package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/greenmart/pos/internal/models"
)

const (
	productsKey = "pos:products"
	productsTTL = 30 * time.Second
)

// ProductCache keeps the full catalog payload in redis for the storefront
// poll. A nil cache is a valid no-op cache.
type ProductCache struct {
	client *redis.Client
}

func New(addr, password string) (*ProductCache, error) {
	if addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &ProductCache{client: client}, nil
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]models.Product, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, productsKey).Bytes()
	if err != nil {
		return nil, false
	}

	var items []models.Product
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

func (c *ProductCache) SetProducts(ctx context.Context, items []models.Product) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.client.Set(ctx, productsKey, raw, productsTTL)
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	if c == nil {
		return
	}
	c.client.Del(ctx, productsKey)
}

func (c *ProductCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
