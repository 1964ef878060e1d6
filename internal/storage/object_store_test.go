package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KEYAJANI/demiland-sub000/internal/config"
)

func newTestStore(t *testing.T, cfg config.StorageConfig) *ObjectStore {
	t.Helper()
	store, err := NewObjectStore(cfg)
	require.NoError(t, err)
	return store
}

func TestNewObjectStoreStripsScheme(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Endpoint:      "https://storage.demiland.co",
		ProductBucket: "demiland-products",
	})

	assert.Equal(t, "storage.demiland.co", store.client.EndpointURL().Host)
}

func TestPublicURLPrefersBaseURL(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Endpoint:      "127.0.0.1:9000",
		ProductBucket: "demiland-products",
		PublicBaseURL: "https://cdn.demiland.co/",
	})

	url := store.PublicURL("products/prod-1/abc.jpg")
	assert.Equal(t, "https://cdn.demiland.co/demiland-products/products/prod-1/abc.jpg", url)
}

func TestPublicURLFallsBackToEndpoint(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Endpoint:      "127.0.0.1:9000",
		ProductBucket: "demiland-products",
	})

	url := store.PublicURL("products/prod-1/abc.jpg")
	assert.Equal(t, "http://127.0.0.1:9000/demiland-products/products/prod-1/abc.jpg", url)
}

func TestRemoveByURLIgnoresForeignURLs(t *testing.T) {
	store := newTestStore(t, config.StorageConfig{
		Endpoint:      "127.0.0.1:9000",
		ProductBucket: "demiland-products",
	})

	// No bucket marker in the path, so nothing to remove and no network call.
	assert.NoError(t, store.RemoveByURL(context.Background(), "https://example.com/some/other/image.jpg"))
	assert.NoError(t, store.RemoveByURL(context.Background(), "https://cdn.demiland.co/demiland-products/"))
}
