package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

const (
	keyFeaturedProducts = "catalog:featured"
	keyCategories       = "catalog:categories"
)

// CatalogCache keeps the hot, read-mostly catalog lookups (featured
// products, category list) in redis. Misses and redis failures both fall
// through to the database; the cache is never authoritative.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	return &CatalogCache{client: client, ttl: ttl}
}

func (c *CatalogCache) GetFeatured(ctx context.Context) ([]models.Product, bool) {
	var products []models.Product
	if !c.get(ctx, keyFeaturedProducts, &products) {
		return nil, false
	}
	return products, true
}

func (c *CatalogCache) SetFeatured(ctx context.Context, products []models.Product) {
	c.set(ctx, keyFeaturedProducts, products)
}

func (c *CatalogCache) GetCategories(ctx context.Context) ([]models.Category, bool) {
	var categories []models.Category
	if !c.get(ctx, keyCategories, &categories) {
		return nil, false
	}
	return categories, true
}

func (c *CatalogCache) SetCategories(ctx context.Context, categories []models.Category) {
	c.set(ctx, keyCategories, categories)
}

// InvalidateProducts drops product-derived entries after any catalog write.
func (c *CatalogCache) InvalidateProducts(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, keyFeaturedProducts)
}

func (c *CatalogCache) get(ctx context.Context, key string, dest any) bool {
	if c.client == nil {
		return false
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(payload, dest) == nil
}

func (c *CatalogCache) set(ctx context.Context, key string, value any) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, payload, c.ttl)
}
