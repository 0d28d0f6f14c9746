// Package models defines the storefront records shared by the catalog,
// the wishlist and the account store.
package models

import "fmt"

// Rating is the aggregate review score the catalog attaches to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product mirrors a catalog record. Wishlist entries are stored as full
// Product values so the wishlist can be shown without refetching the catalog.
type Product struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}

// PriceString formats the price the way the product card shows it.
func (p Product) PriceString() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
