// Package cli implements the terminal storefront: a REPL that routes user
// commands into the auth, catalog, and session services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/avoskres/parlor/internal/config"
	"github.com/avoskres/parlor/internal/logging"
	"github.com/avoskres/parlor/internal/models"
	"github.com/avoskres/parlor/internal/services"
	"github.com/avoskres/parlor/internal/storage"
)

type App struct {
	config  *config.Config
	store   *storage.Store
	auth    *services.AuthService
	catalog *services.CatalogService
	session *services.Session
	logger  logging.Logger
	reader  *bufio.Reader

	// last search terms and page, so `next` and `add` can refer back to them
	lastSeason  string
	lastQuery   string
	lastResults []models.Flavor
}

// NewApp opens the store at the configured path and wires the services.
// A store that cannot be opened or migrated is fatal to startup.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing store", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	return &App{
		config:  c,
		store:   store,
		auth:    services.NewAuthService(store.DB, logger),
		catalog: services.NewCatalogService(store.DB, c.PageSize, logger),
		session: services.NewSession(),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.store.Close() }()

	printlnFn("Welcome to the Ice Cream Parlor (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) getStatus() string {
	if !a.isLoggedIn() {
		return ""
	}
	s := a.session.UserName()
	if n := len(a.session.Items()); n > 0 {
		s = fmt.Sprintf("%s, %d in cart", s, n)
	}
	return fmt.Sprintf("(%s)", s)
}
