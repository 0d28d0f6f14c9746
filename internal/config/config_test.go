package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.StoreBackend)
	assert.Equal(t, "shop.db", c.StoreDSN)
	assert.Equal(t, "https://fakestoreapi.com", c.CatalogURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "suffix", c.Hasher)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"shop", "-e", filepath.Join(t.TempDir(), "missing.env")}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "shop.db", cfg.StoreDSN)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	envFile := filepath.Join(dir, "shop.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SHOP_STORE_DSN=from-env.db\nSHOP_HASHER=argon2\nSHOP_LOG_LEVEL=debug\n"), 0o600))
	jsonFile := writeTempJSON(t, dir, "cfg.json", map[string]any{
		"hasher":          "bcrypt",
		"request_timeout": "3s",
	})

	os.Args = []string{"shop", "-e", envFile, "-c", jsonFile, "-d", "from-flag.db"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag.db", cfg.StoreDSN)
	assert.Equal(t, "bcrypt", cfg.Hasher)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}
