// Package wishlist stores the products a visitor has saved for later.
//
// The list is kept under the "wishlist" key as a JSON array of product
// objects in insertion order. It is shared by every visitor of the store,
// logged in or not.
//
// # Concurrency
//
// Add and Remove read the whole list, change it and write it back. Nothing
// guards that sequence: two processes updating the same store at once can
// lose one of the updates, and the last write wins for the whole list.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/famousshop/internal/logging"
	"github.com/dmitrijs2005/famousshop/internal/models"
	"github.com/dmitrijs2005/famousshop/internal/store"
)

// StoreKey is the store key holding the wishlist.
const StoreKey = "wishlist"

// AddResult tells the caller which branch Add took.
type AddResult int

const (
	Added AddResult = iota + 1
	AlreadyPresent
)

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already present"
	}
	return fmt.Sprintf("AddResult(%d)", int(r))
}

// Message returns the feedback shown to the user after adding p.
func (r AddResult) Message(p models.Product) string {
	if r == AlreadyPresent {
		return fmt.Sprintf("%q is already in your wishlist.", p.Title)
	}
	return fmt.Sprintf("Added %q to wishlist!", p.Title)
}

type Repository struct {
	store store.Store
	log   logging.Logger
}

func NewRepository(s store.Store, log logging.Logger) *Repository {
	if log == nil {
		log = logging.Nop()
	}
	return &Repository{store: s, log: log.With("component", "wishlist")}
}

// List returns a snapshot of the wishlist. Missing or unreadable data yields
// an empty list.
func (r *Repository) List(ctx context.Context) ([]models.Product, error) {
	raw, ok, err := r.store.Get(ctx, StoreKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Product{}, nil
	}

	var items []models.Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		r.log.Warn(ctx, "stored wishlist is malformed, treating as empty", "error", err)
		return []models.Product{}, nil
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}

// Add appends p unless a product with the same id is already listed.
func (r *Repository) Add(ctx context.Context, p models.Product) (AddResult, error) {
	items, err := r.List(ctx)
	if err != nil {
		return 0, err
	}

	for _, it := range items {
		if it.ID == p.ID {
			return AlreadyPresent, nil
		}
	}

	items = append(items, p)
	if err := r.save(ctx, items); err != nil {
		return 0, err
	}

	r.log.Info(ctx, "product added to wishlist", "product_id", p.ID, "size", len(items))
	return Added, nil
}

// Remove drops the product with the given id. The filtered list is written
// back even when nothing matched.
func (r *Repository) Remove(ctx context.Context, id int64) error {
	items, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Product, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}

	if err := r.save(ctx, kept); err != nil {
		return err
	}

	r.log.Info(ctx, "product removed from wishlist", "product_id", id, "size", len(kept))
	return nil
}

func (r *Repository) save(ctx context.Context, items []models.Product) error {
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode wishlist: %w", err)
	}
	if err := r.store.Set(ctx, StoreKey, string(b)); err != nil {
		r.log.Error(ctx, "failed to persist wishlist", "error", err)
		return err
	}
	return nil
}
