package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

func newTestCache(t *testing.T) (*CatalogCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCatalogCache(client, time.Minute), mr
}

func TestFeaturedRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := cache.GetFeatured(ctx)
	assert.False(t, ok)

	price := 24.99
	products := []models.Product{{ID: "prod-1", Name: "Glow Serum", Price: &price, Featured: true}}
	cache.SetFeatured(ctx, products)

	got, ok := cache.GetFeatured(ctx)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "prod-1", got[0].ID)
	require.NotNil(t, got[0].Price)
	assert.Equal(t, 24.99, *got[0].Price)
}

func TestCategoriesRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	categories := []models.Category{{ID: "cat-1", Name: "Lips"}, {ID: "cat-2", Name: "Skincare"}}
	cache.SetCategories(ctx, categories)

	got, ok := cache.GetCategories(ctx)
	require.True(t, ok)
	assert.Len(t, got, 2)
}

func TestInvalidateProducts(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	cache.SetFeatured(ctx, []models.Product{{ID: "prod-1"}})
	cache.SetCategories(ctx, []models.Category{{ID: "cat-1", Name: "Lips"}})

	cache.InvalidateProducts(ctx)

	_, ok := cache.GetFeatured(ctx)
	assert.False(t, ok)

	// Categories are not product-derived and survive the invalidation.
	_, ok = cache.GetCategories(ctx)
	assert.True(t, ok)
}

func TestFeaturedExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	cache.SetFeatured(ctx, []models.Product{{ID: "prod-1"}})
	mr.FastForward(2 * time.Minute)

	_, ok := cache.GetFeatured(ctx)
	assert.False(t, ok)
}

func TestNilClientDegradesToMiss(t *testing.T) {
	cache := NewCatalogCache(nil, time.Minute)
	ctx := context.Background()

	cache.SetFeatured(ctx, []models.Product{{ID: "prod-1"}})
	_, ok := cache.GetFeatured(ctx)
	assert.False(t, ok)

	cache.InvalidateProducts(ctx)
}

func TestCorruptEntryIsAMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set("catalog:featured", "not json"))

	_, ok := cache.GetFeatured(ctx)
	assert.False(t, ok)
}
