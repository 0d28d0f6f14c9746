package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEnv(t *testing.T) {
	vals := map[string]string{
		"SHOP_STORE_BACKEND":   "redis",
		"SHOP_REDIS_URL":       "redis://cache:6379/1",
		"SHOP_REQUEST_TIMEOUT": "750ms",
		"SHOP_LOG_BACKEND":     "zap",
		"SHOP_CATALOG_URL":     "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := vals[k]
		return v, ok
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	applyEnv(cfg, lookup)

	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, 750*time.Millisecond, cfg.RequestTimeout)
	assert.Equal(t, "zap", cfg.LogBackend)
	assert.Equal(t, "https://fakestoreapi.com", cfg.CatalogURL, "empty values are ignored")
}

func TestApplyEnv_BadTimeoutPanics(t *testing.T) {
	cfg := &Config{}
	require.Panics(t, func() {
		applyEnv(cfg, func(k string) (string, bool) {
			if k == "SHOP_REQUEST_TIMEOUT" {
				return "soon", true
			}
			return "", false
		})
	})
}

func TestParseEnv_ProcessEnvBeatsDotEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	envFile := filepath.Join(t.TempDir(), "shop.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHOP_STORE_BACKEND=memory\nSHOP_STORE_DSN=dotenv.db\n"), 0o600))
	os.Args = []string{"shop", "-env", envFile}
	t.Setenv("SHOP_STORE_BACKEND", "redis")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "redis", cfg.StoreBackend)
	assert.Equal(t, "dotenv.db", cfg.StoreDSN)
}
