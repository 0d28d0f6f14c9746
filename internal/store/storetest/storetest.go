// Package storetest provides store doubles for repository tests.
package storetest

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/famousshop/internal/store"
)

// ErrQuotaExceeded is the driver error FlakyStore reports.
var ErrQuotaExceeded = errors.New("quota exceeded")

// FlakyStore is a MemoryStore whose operations can be made to fail the way a
// full or disabled medium would.
type FlakyStore struct {
	*store.MemoryStore
	FailGet    bool
	FailSet    bool
	FailRemove bool

	Sets int
}

func NewFlakyStore() *FlakyStore {
	return &FlakyStore{MemoryStore: store.NewMemoryStore()}
}

func (f *FlakyStore) Get(ctx context.Context, key string) (string, bool, error) {
	if f.FailGet {
		return "", false, fmt.Errorf("%w: failed to get kv[%s]: %w", store.ErrUnavailable, key, ErrQuotaExceeded)
	}
	return f.MemoryStore.Get(ctx, key)
}

func (f *FlakyStore) Set(ctx context.Context, key, value string) error {
	if f.FailSet {
		return fmt.Errorf("%w: failed to set kv[%s]: %w", store.ErrUnavailable, key, ErrQuotaExceeded)
	}
	f.Sets++
	return f.MemoryStore.Set(ctx, key, value)
}

func (f *FlakyStore) Remove(ctx context.Context, key string) error {
	if f.FailRemove {
		return fmt.Errorf("%w: failed to delete kv[%s]: %w", store.ErrUnavailable, key, ErrQuotaExceeded)
	}
	return f.MemoryStore.Remove(ctx, key)
}
