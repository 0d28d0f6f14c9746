package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/famousshop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Only the flags listed in the package documentation are considered, so
// -c and -e handled elsewhere do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-r", "-u", "-t", "-p", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StoreBackend, "s", cfg.StoreBackend, "store backend: sqlite, redis or memory")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "SQLite database path")
	fs.StringVar(&cfg.RedisURL, "r", cfg.RedisURL, "Redis URL")
	fs.StringVar(&cfg.CatalogURL, "u", cfg.CatalogURL, "catalog API base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "catalog request timeout (in seconds)")
	fs.StringVar(&cfg.Hasher, "p", cfg.Hasher, "credential hasher: suffix, argon2 or bcrypt")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
