package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - StoreBackend: "sqlite", "redis" or "memory".
//   - StoreDSN: SQLite database path.
//   - RedisURL: redis:// URL used by the redis backend.
//   - RedisPrefix: prepended to every store key in Redis.
//   - CatalogURL: base URL of the product catalog API.
//   - RequestTimeout: per-request timeout for catalog calls.
//   - Hasher: credential hasher name ("suffix", "argon2", "bcrypt").
//   - LogBackend, LogLevel: see logging.New.
type Config struct {
	StoreBackend   string
	StoreDSN       string
	RedisURL       string
	RedisPrefix    string
	CatalogURL     string
	RequestTimeout time.Duration
	Hasher         string
	LogBackend     string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StoreBackend = "sqlite"
	c.StoreDSN = "shop.db"
	c.RedisURL = "redis://127.0.0.1:6379/0"
	c.RedisPrefix = "famousshop:"
	c.CatalogURL = "https://fakestoreapi.com"
	c.RequestTimeout = 10 * time.Second
	c.Hasher = "suffix"
	c.LogBackend = "slog"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (seeded from a dotenv file), a JSON file and command-line
// flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
