// Package accounts keeps the storefront's registered users in the key-value
// store and checks login attempts against them.
//
// The whole account list lives under a single key as a JSON array of
// {"username","password"} objects. Usernames are compared byte for byte; there
// is no normalization, rate limiting or lockout.
package accounts

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/famousshop/internal/logging"
	"github.com/dmitrijs2005/famousshop/internal/models"
	"github.com/dmitrijs2005/famousshop/internal/store"
)

// StoreKey is the store key holding the account list.
const StoreKey = "users"

type Repository struct {
	store  store.Store
	hasher CredentialHasher
	log    logging.Logger
}

// NewRepository builds a repository over s. A nil hasher selects SuffixHasher
// and a nil logger discards output.
func NewRepository(s store.Store, hasher CredentialHasher, log logging.Logger) *Repository {
	if hasher == nil {
		hasher = SuffixHasher{}
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Repository{store: s, hasher: hasher, log: log.With("component", "accounts")}
}

// Accounts returns a snapshot of the stored account list. Missing or
// unreadable data yields an empty list.
func (r *Repository) Accounts(ctx context.Context) ([]models.Account, error) {
	raw, ok, err := r.store.Get(ctx, StoreKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Account{}, nil
	}

	var list []models.Account
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		r.log.Warn(ctx, "stored account list is malformed, treating as empty", "error", err)
		return []models.Account{}, nil
	}
	if list == nil {
		list = []models.Account{}
	}
	return list, nil
}

// Register appends a new account. It fails with ErrUsernameTaken when the
// username is already present, leaving the stored list untouched.
func (r *Repository) Register(ctx context.Context, username, password string) error {
	list, err := r.Accounts(ctx)
	if err != nil {
		return err
	}

	if _, found := find(list, username); found {
		return ErrUsernameTaken
	}

	hashed, err := r.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	list = append(list, models.Account{Username: username, Password: hashed})

	b, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := r.store.Set(ctx, StoreKey, string(b)); err != nil {
		r.log.Error(ctx, "failed to persist account list", "error", err)
		return err
	}

	r.log.Info(ctx, "account registered", "username", username, "accounts", len(list))
	return nil
}

// Authenticate checks the credentials. It does not touch the session; the
// caller marks the session logged in on success.
func (r *Repository) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrMissingCredentials
	}

	list, err := r.Accounts(ctx)
	if err != nil {
		return err
	}

	acc, found := find(list, username)
	if !found || !r.hasher.Verify(password, acc.Password) {
		r.log.Debug(ctx, "authentication rejected", "username", username)
		return ErrInvalidCredentials
	}
	return nil
}

func find(list []models.Account, username string) (models.Account, bool) {
	for _, a := range list {
		if a.Username == username {
			return a, true
		}
	}
	return models.Account{}, false
}
