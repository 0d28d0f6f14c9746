package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/famousshop/internal/accounts"
	"github.com/dmitrijs2005/famousshop/internal/config"
	"github.com/dmitrijs2005/famousshop/internal/logging"
	"github.com/dmitrijs2005/famousshop/internal/models"
	"github.com/dmitrijs2005/famousshop/internal/session"
	"github.com/dmitrijs2005/famousshop/internal/store"
	"github.com/dmitrijs2005/famousshop/internal/wishlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testProducts = []models.Product{
	{ID: 1, Title: "Fjallraven Backpack", Price: 109.95, Category: "men's clothing", Image: "https://img/1.jpg"},
	{ID: 7, Title: "White Gold Plated Princess", Price: 9.99, Description: "Classic ring", Category: "jewelery", Image: "https://img/7.jpg"},
	{ID: 9, Title: "WD 2TB Elements Portable Hard Drive", Price: 64, Category: "electronics", Image: "https://img/9.jpg"},
}

type fakeCatalog struct {
	products []models.Product
	err      error

	listCalls int
	getCalls  int
}

func (f *fakeCatalog) Products(context.Context) ([]models.Product, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalog) Product(_ context.Context, id int64) (models.Product, error) {
	f.getCalls++
	if f.err != nil {
		return models.Product{}, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, errors.New("not found")
}

// newTestApp wires the real repositories on top of st and captures output.
func newTestApp(t *testing.T, st store.Store, cat catalogService) (*App, *bytes.Buffer) {
	t.Helper()

	log := logging.Nop()
	sm := session.NewManager(st, log)
	require.NoError(t, sm.Init(context.Background()))

	out := &bytes.Buffer{}
	return &App{
		config:         &config.Config{},
		store:          st,
		accounts:       accounts.NewRepository(st, nil, log),
		session:        sm,
		wishlist:       wishlist.NewRepository(st, log),
		catalog:        cat,
		log:            log,
		reader:         bufio.NewReader(strings.NewReader("")),
		out:            out,
		carouselPeriod: time.Millisecond,
	}, out
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, &config.Config{StoreBackend: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &store.MemoryStore{}, st)

	_, err = openStore(ctx, &config.Config{StoreBackend: "floppy"})
	require.Error(t, err)
}

func TestNewApp_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreBackend = "memory"

	a, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(guest)", a.getStatus())
}

func TestNewApp_BadConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.StoreBackend = "memory"

	cfg.Hasher = "md5"
	_, err := NewApp(context.Background(), cfg)
	require.Error(t, err)

	cfg.Hasher = "suffix"
	cfg.LogBackend = "syslog"
	_, err = NewApp(context.Background(), cfg)
	require.Error(t, err)
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	a, _ := newTestApp(t, st, &fakeCatalog{})
	require.NoError(t, a.session.Login(ctx))
	assert.Equal(t, "(logged in)", a.getStatus())

	restarted, _ := newTestApp(t, st, &fakeCatalog{})
	assert.True(t, restarted.isLoggedIn())
}
