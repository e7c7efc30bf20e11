package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/xpboard/internal/client/client"
	"github.com/dmitrijs2005/xpboard/internal/client/config"
	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/xpboard/internal/client/schema"
	"github.com/dmitrijs2005/xpboard/internal/client/services"
	"github.com/dmitrijs2005/xpboard/internal/client/session"
	"github.com/dmitrijs2005/xpboard/internal/logging"
	"github.com/dmitrijs2005/xpboard/internal/netx"
)

type App struct {
	config         *config.Config
	log            logging.Logger
	closer         io.Closer
	authService    services.AuthService
	profileService services.ProfileService
	reader         *bufio.Reader
	out            io.Writer

	// profile is the last successfully loaded snapshot, nil when logged out.
	profile *models.Profile
}

// NewApp wires storage, HTTP clients and services from c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DBPath, "err", err)
		return nil, err
	}

	store := session.NewKVStore(metadata.NewSQLiteRepository(db), log)
	httpClient := netx.NewClient(c.RequestTimeout)

	gql := client.NewGraphQLClient(c.BaseURL, httpClient, store, log)
	backend, err := schema.New(c.Schema, gql)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	as := services.NewAuthService(client.NewAuthenticator(c.BaseURL, httpClient, log), store, log)
	ps := services.NewProfileService(store, backend, c.ExcludedPathPrefixes, log)

	log.Debug(ctx, "app initialized", "base_url", c.BaseURL, "schema", backend.Name(), "db", c.DBPath)

	return &App{
		config:         c,
		log:            log,
		closer:         db,
		authService:    as,
		profileService: ps,
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
	}, nil
}

// Run restores a previous session if one is still valid, then blocks in the
// REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to xpboard (type 'help' for commands)")

	if a.isLoggedIn(ctx) {
		fmt.Fprintln(a.out, "Session restored.")
		_ = a.Profile(ctx)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) Close() {
	if a.closer != nil {
		_ = a.closer.Close()
	}
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.authService.IsAuthenticated(ctx)
}

func (a *App) status() string {
	if a.profile != nil {
		return fmt.Sprintf("(%s)", a.profile.User.Login)
	}
	return ""
}
