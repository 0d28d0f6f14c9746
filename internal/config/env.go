package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/famousshop/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultDotEnv = ".env"

// parseEnv overlays Config with SHOP_* variables. The process environment
// wins over the dotenv file; a missing dotenv file is not an error.
//
// Panics when SHOP_REQUEST_TIMEOUT cannot be parsed.
func parseEnv(cfg *Config) {
	path := flagx.DotEnvFlags()
	if path == "" {
		path = defaultDotEnv
	}

	fileVals, err := godotenv.Read(path)
	if err != nil {
		fileVals = map[string]string{}
	}

	applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	str("SHOP_STORE_BACKEND", &cfg.StoreBackend)
	str("SHOP_STORE_DSN", &cfg.StoreDSN)
	str("SHOP_REDIS_URL", &cfg.RedisURL)
	str("SHOP_REDIS_PREFIX", &cfg.RedisPrefix)
	str("SHOP_CATALOG_URL", &cfg.CatalogURL)
	str("SHOP_HASHER", &cfg.Hasher)
	str("SHOP_LOG_BACKEND", &cfg.LogBackend)
	str("SHOP_LOG_LEVEL", &cfg.LogLevel)

	if v, ok := lookup("SHOP_REQUEST_TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
}
