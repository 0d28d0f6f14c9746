package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/famousshop/internal/flagx"
	"github.com/dmitrijs2005/famousshop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
type JsonConfig struct {
	StoreBackend   string         `json:"store_backend"`
	StoreDSN       string         `json:"store_dsn"`
	RedisURL       string         `json:"redis_url"`
	RedisPrefix    string         `json:"redis_prefix"`
	CatalogURL     string         `json:"catalog_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	Hasher         string         `json:"hasher"`
	LogBackend     string         `json:"log_backend"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays Config with the non-empty values of the JSON file named
// by -c or -config. Without either flag it does nothing.
//
// Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.StoreBackend, jc.StoreBackend)
	set(&cfg.StoreDSN, jc.StoreDSN)
	set(&cfg.RedisURL, jc.RedisURL)
	set(&cfg.RedisPrefix, jc.RedisPrefix)
	set(&cfg.CatalogURL, jc.CatalogURL)
	set(&cfg.Hasher, jc.Hasher)
	set(&cfg.LogBackend, jc.LogBackend)
	set(&cfg.LogLevel, jc.LogLevel)

	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
