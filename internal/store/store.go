// Package store provides the persistent string-keyed key-value medium that
// the storefront keeps its accounts, session flag and wishlist in.
//
// # Contract
//
//   - Get returns ok=false for an absent key and never an error for it.
//   - Set either persists the value or returns an error wrapping
//     ErrUnavailable; callers treat that as fatal for the session.
//   - Remove is a no-op for an absent key.
//
// Every call is synchronous and durable once it returns. No transaction spans
// more than one key, so concurrent read-modify-write sequences against the
// same key from two processes resolve as "last write wins".
//
// # Backends
//
//   - SQLiteStore: a single-file database (modernc.org/sqlite), the default
//   - RedisStore: a shared Redis instance
//   - MemoryStore: process-local map, used by tests and the "memory" backend
package store

import (
	"context"
	"errors"
)

// ErrUnavailable marks failures of the underlying medium (database closed,
// disk full, server unreachable). It is always wrapped together with the
// driver error, so errors.Is works for both.
var ErrUnavailable = errors.New("store unavailable")

// Store is the adapter shared by all repositories.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
