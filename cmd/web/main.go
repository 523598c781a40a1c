package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/donseba/go-htmx"
	"github.com/joho/godotenv"
	"github.com/myrjola/tutorials/internal/catalog"
	"github.com/myrjola/tutorials/internal/envstruct"
	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/identity"
	"github.com/myrjola/tutorials/internal/logging"
	"github.com/myrjola/tutorials/internal/placeholder"
	"github.com/myrjola/tutorials/internal/pprofserver"
	"github.com/myrjola/tutorials/internal/repositories"
	"github.com/myrjola/tutorials/internal/routeguard"
	"github.com/myrjola/tutorials/internal/sqlite"
)

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	guard          *routeguard.Guard
	cookie         identity.CookieOptions
	upstream       *placeholder.Client
	photos         *catalog.Catalog
	htmx           *htmx.HTMX
	serverTimeout  time.Duration
}

// minServerTimeout leaves the /data/* timeout handler, which fires earlier than the server timeout, a usable deadline.
const minServerTimeout = time.Second

var ErrServerTimeoutTooShort = errors.NewSentinel("server timeout too short")

type config struct {
	// Addr is the address the application listens on.
	Addr string `env:"TUTORIALS_ADDR" envDefault:"localhost:4000"`
	// SQLiteURL is the path to the SQLite database or ":memory:".
	SQLiteURL string `env:"TUTORIALS_SQLITE_URL" envDefault:"./tutorials.sqlite"`
	// UpstreamURL is the base URL of the JSONPlaceholder compatible API serving posts and photos.
	UpstreamURL string `env:"TUTORIALS_UPSTREAM_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	// UpstreamTimeout limits each upstream request. Keep it below the server timeout.
	UpstreamTimeout time.Duration `env:"TUTORIALS_UPSTREAM_TIMEOUT" envDefault:"4s"`
	// ServerTimeout is used for the HTTP server read and write timeouts.
	ServerTimeout time.Duration `env:"TUTORIALS_SERVER_TIMEOUT" envDefault:"5s"`
	// SecureCookies sets the Secure attribute on all cookies. Disable only for plain HTTP development.
	SecureCookies bool `env:"TUTORIALS_SECURE_COOKIES" envDefault:"true"`
	// PprofAddr enables the pprof server when set, e.g., "localhost:6060".
	PprofAddr string `env:"TUTORIALS_PPROF_ADDR" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cfg config
		err error
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	if cfg.ServerTimeout < minServerTimeout {
		return errors.Wrap(ErrServerTimeoutTooShort, "validate config",
			slog.Duration("server_timeout", cfg.ServerTimeout), slog.Duration("min", minServerTimeout))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if cfg.PprofAddr != "" {
		pprofserver.Launch(ctx, cfg.PprofAddr, logger)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, cfg.SQLiteURL, logger); err != nil {
		return errors.Wrap(err, "open database", slog.String("url", cfg.SQLiteURL))
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.LogAttrs(ctx, slog.LevelError, "failed to close database", errors.SlogError(closeErr))
		}
	}()
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db", slog.String("url", cfg.SQLiteURL))

	sessionStore := sqlite3store.NewWithCleanupInterval(db.ReadWrite.DB, time.Hour)
	defer sessionStore.StopCleanup()
	sessionManager := scs.New()
	sessionManager.Store = sessionStore
	sessionManager.Lifetime = 12 * time.Hour //nolint:mnd // flash messages don't need long sessions
	sessionManager.Cookie.Secure = cfg.SecureCookies
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	cookie := identity.CookieOptions{Secure: cfg.SecureCookies}
	upstream := placeholder.New(cfg.UpstreamURL, cfg.UpstreamTimeout)

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		guard:          routeguard.New(logger, cookie),
		cookie:         cookie,
		upstream:       upstream,
		photos:         catalog.New(upstream, repositories.NewPhotoRepository(db, logger), logger),
		htmx:           htmx.New(),
		serverTimeout:  cfg.ServerTimeout,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   true,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.LogAttrs(ctx, slog.LevelError, "failed to load .env", errors.SlogError(err))
		os.Exit(1)
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
