// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the key-value store, the account, session and
// wishlist repositories and the catalog client behind a small REPL that
// stands in for the storefront's home, collection and wishlist views.
//
// Key features:
//   - Register / Login / Logout against the local account list
//   - Browse and search the product catalog, view product details
//   - Add products to and remove them from the wishlist
//   - Rotate through product images the way the home page carousel does
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
