package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	t.Setenv("RATE_STORE", "")
	t.Setenv("STALENESS_THRESHOLD", "")
	t.Setenv("PROVIDER_TIMEOUT", "")
	t.Setenv("REFERENCE_BASE", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StoreMemory, cfg.RateStore)
	assert.Equal(t, "USD", cfg.ReferenceBase)
	assert.Equal(t, 12*time.Hour, cfg.StalenessThreshold)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, "6-M", cfg.RefreshRateLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/rates")
	t.Setenv("RATE_STORE", "")
	t.Setenv("REFERENCE_BASE", " eur ")
	t.Setenv("STALENESS_THRESHOLD", "30m")
	t.Setenv("PROVIDER_TIMEOUT", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.RateStore)
	assert.Equal(t, "EUR", cfg.ReferenceBase)
	assert.Equal(t, 30*time.Minute, cfg.StalenessThreshold)
	assert.Equal(t, 10*time.Second, cfg.ProviderTimeout, "invalid durations fall back")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidStore(t *testing.T) {
	t.Setenv("RATE_STORE", "redis")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("RATE_STORE", "postgres")
	t.Setenv("PGSQL_URL", "")
	_, err = LoadConfig()
	assert.Error(t, err)
}
