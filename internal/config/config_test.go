package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DEMILAND_SECURITY_JWTSECRET", "test-secret")
	t.Setenv("DEMILAND_POSTGRES_DSN", "postgres://localhost:5432/demiland")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Postgres.MaxOpen)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, "demiland-products", cfg.Storage.ProductBucket)
	assert.Equal(t, 24*time.Hour, cfg.Security.JWTTTL)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, "analytics:events", cfg.Analytics.Stream)
	assert.Equal(t, int64(100000), cfg.Analytics.MaxStream)
}

func TestLoadReadsEnvOverrides(t *testing.T) {
	t.Setenv("DEMILAND_SECURITY_JWTSECRET", "test-secret")
	t.Setenv("DEMILAND_POSTGRES_DSN", "postgres://db.internal:5432/demiland")
	t.Setenv("DEMILAND_HTTP_PORT", "9090")
	t.Setenv("DEMILAND_REDIS_PASSWORD", "hunter2")
	t.Setenv("DEMILAND_STORAGE_ENDPOINT", "minio.internal:9000")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.Security.JWTSecret)
	assert.Equal(t, "postgres://db.internal:5432/demiland", cfg.Postgres.DSN)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
	assert.Equal(t, "minio.internal:9000", cfg.Storage.Endpoint)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("DEMILAND_POSTGRES_DSN", "postgres://localhost:5432/demiland")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwtsecret")
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DEMILAND_SECURITY_JWTSECRET", "test-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres.dsn")
}
