// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables. Values missing from the process environment are
//     looked up in a dotenv file: -e/-env, or ".env" in the working directory.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Environment variables
//
//	SHOP_STORE_BACKEND   sqlite | redis | memory
//	SHOP_STORE_DSN       SQLite database path
//	SHOP_REDIS_URL       redis://host:port/db
//	SHOP_REDIS_PREFIX    key prefix in Redis
//	SHOP_CATALOG_URL     catalog API base URL
//	SHOP_REQUEST_TIMEOUT catalog request timeout ("10s")
//	SHOP_HASHER          suffix | argon2 | bcrypt
//	SHOP_LOG_BACKEND     slog | zap
//	SHOP_LOG_LEVEL       debug | info | warn | error
//
// Supported flags
//
//	-s string   store backend
//	-d string   SQLite database path
//	-r string   Redis URL
//	-u string   catalog base URL
//	-t int      catalog request timeout (seconds)
//	-p string   credential hasher
//	-l string   log level
//
// # JSON schema
//
// Empty fields leave the earlier value in place. Durations accept "10s" or
// integer nanoseconds:
//
//	{
//	  "store_backend": "sqlite",
//	  "store_dsn": "shop.db",
//	  "redis_url": "redis://127.0.0.1:6379/0",
//	  "redis_prefix": "famousshop:",
//	  "catalog_url": "https://fakestoreapi.com",
//	  "request_timeout": "10s",
//	  "hasher": "suffix",
//	  "log_backend": "slog",
//	  "log_level": "warn"
//	}
package config
