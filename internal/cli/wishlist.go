package cli

import (
	"context"

	"github.com/dmitrijs2005/famousshop/internal/accounts"
	"github.com/dmitrijs2005/famousshop/internal/session"
	"github.com/dmitrijs2005/famousshop/internal/wishlist"
)

// Wish adds the product with the given id to the wishlist and reports
// whether it was added or already there.
func (a *App) Wish(ctx context.Context, rawID string) error {
	p, err := a.lookupProduct(ctx, rawID)
	if err != nil {
		return err
	}

	res, err := a.wishlist.Add(ctx, p)
	if err != nil {
		return err
	}
	a.println(res.Message(p))
	return nil
}

// Unwish removes the product with the given id. Removing a product that is
// not in the wishlist is not an error.
func (a *App) Unwish(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}
	if err := a.wishlist.Remove(ctx, id); err != nil {
		return err
	}
	a.println("Removed from wishlist.")
	return nil
}

// Wishlist prints the saved products.
func (a *App) Wishlist(ctx context.Context) error {
	items, err := a.wishlist.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.println("Your wishlist is empty.")
		return nil
	}
	a.println("My Wishlist")
	a.printProducts(items)
	return nil
}

type keyClearer interface {
	Clear(ctx context.Context, keys ...string) error
}

// Reset wipes every storefront key and logs the session out.
func (a *App) Reset(ctx context.Context) error {
	keys := []string{accounts.StoreKey, session.StoreKey, wishlist.StoreKey}

	if c, ok := a.store.(keyClearer); ok {
		if err := c.Clear(ctx, keys...); err != nil {
			return err
		}
	} else {
		for _, k := range keys {
			if err := a.store.Remove(ctx, k); err != nil {
				return err
			}
		}
	}

	if a.session.IsLoggedIn() {
		if err := a.session.Logout(ctx); err != nil {
			return err
		}
	}

	a.log.Warn(ctx, "storefront data reset")
	a.println("All storefront data cleared.")
	return nil
}
