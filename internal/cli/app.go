package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/famousshop/internal/accounts"
	"github.com/dmitrijs2005/famousshop/internal/catalog"
	"github.com/dmitrijs2005/famousshop/internal/config"
	"github.com/dmitrijs2005/famousshop/internal/logging"
	"github.com/dmitrijs2005/famousshop/internal/models"
	"github.com/dmitrijs2005/famousshop/internal/session"
	"github.com/dmitrijs2005/famousshop/internal/store"
	"github.com/dmitrijs2005/famousshop/internal/wishlist"
	"github.com/google/uuid"
)

type accountService interface {
	Register(ctx context.Context, username, password string) error
	Authenticate(ctx context.Context, username, password string) error
}

type sessionService interface {
	IsLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
}

type wishlistService interface {
	List(ctx context.Context) ([]models.Product, error)
	Add(ctx context.Context, p models.Product) (wishlist.AddResult, error)
	Remove(ctx context.Context, id int64) error
}

type catalogService interface {
	Products(ctx context.Context) ([]models.Product, error)
	Product(ctx context.Context, id int64) (models.Product, error)
}

type App struct {
	config   *config.Config
	store    store.Store
	accounts accountService
	session  sessionService
	wishlist wishlistService
	catalog  catalogService
	log      logging.Logger

	reader *bufio.Reader
	out    io.Writer

	products       []models.Product
	carouselPeriod time.Duration
}

// NewApp opens the configured store and builds every service on top of it.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(c.LogBackend, c.LogLevel, os.Stderr)
	if err != nil {
		return nil, err
	}
	log = log.With("instance", uuid.NewString(), "store", c.StoreBackend)

	hasher, err := accounts.NewHasher(c.Hasher)
	if err != nil {
		return nil, err
	}

	st, err := openStore(ctx, c)
	if err != nil {
		log.Error(ctx, "error initializing store", "error", err)
		return nil, err
	}

	sm := session.NewManager(st, log)
	if err := sm.Init(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	return &App{
		config:         c,
		store:          st,
		accounts:       accounts.NewRepository(st, hasher, log),
		session:        sm,
		wishlist:       wishlist.NewRepository(st, log),
		catalog:        catalog.NewClient(c.CatalogURL, c.RequestTimeout),
		log:            log,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		carouselPeriod: catalog.DefaultCarouselPeriod,
	}, nil
}

func openStore(ctx context.Context, c *config.Config) (store.Store, error) {
	switch c.StoreBackend {
	case "sqlite":
		s, err := store.OpenSQLite(ctx, c.StoreDSN)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "redis":
		s, err := store.OpenRedis(ctx, c.RedisURL, c.RedisPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "memory":
		return store.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", c.StoreBackend)
}

// Run starts the REPL on stdin and closes the store when it returns.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.println("Welcome to Famous Shopin (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(logged in)"
	}
	return "(guest)"
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
