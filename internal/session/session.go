// Package session tracks whether some account is currently logged in.
//
// The flag is persisted under the "isLoggedIn" key as the string "true"; any
// other value, or no value, means logged out. The manager does not record
// which account logged in.
package session

import (
	"context"

	"github.com/dmitrijs2005/famousshop/internal/logging"
	"github.com/dmitrijs2005/famousshop/internal/store"
)

const (
	// StoreKey is the store key holding the session flag.
	StoreKey = "isLoggedIn"

	loggedInValue = "true"
)

// Manager mirrors the persisted flag in memory. Init loads it once; Login
// and Logout persist first and only then update the mirror, so the mirror
// never claims a state the store does not hold.
type Manager struct {
	store    store.Store
	log      logging.Logger
	loggedIn bool
}

func NewManager(s store.Store, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{store: s, log: log.With("component", "session")}
}

// Init reads the persisted flag into the mirror.
func (m *Manager) Init(ctx context.Context) error {
	v, ok, err := m.store.Get(ctx, StoreKey)
	if err != nil {
		return err
	}
	m.loggedIn = ok && v == loggedInValue
	return nil
}

func (m *Manager) IsLoggedIn() bool {
	return m.loggedIn
}

func (m *Manager) Login(ctx context.Context) error {
	if err := m.store.Set(ctx, StoreKey, loggedInValue); err != nil {
		m.log.Error(ctx, "failed to persist session flag", "error", err)
		return err
	}
	m.loggedIn = true
	m.log.Info(ctx, "logged in")
	return nil
}

func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Remove(ctx, StoreKey); err != nil {
		m.log.Error(ctx, "failed to clear session flag", "error", err)
		return err
	}
	m.loggedIn = false
	m.log.Info(ctx, "logged out")
	return nil
}
