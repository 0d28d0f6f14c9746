package models

// Account is a registered storefront user.
//
// Password holds the output of the configured credential hasher, never the
// plaintext. With the default suffix hasher that output is trivially
// reversible; see accounts.SuffixHasher.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
