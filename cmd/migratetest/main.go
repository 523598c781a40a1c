package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/repositories"
	"github.com/myrjola/tutorials/internal/sqlite"
	"github.com/myrjola/tutorials/internal/testhelpers"
)

// migratetest applies the schema to a copy of a production database and checks that the tables are still readable.
func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	var (
		err       error
		start     = time.Now()
		ctx       context.Context
		sqliteURL string
		ok        bool
		cancel    context.CancelFunc
	)
	ctx = context.Background()
	ctx, cancel = context.WithTimeout(ctx, 5*time.Second) //nolint:mnd // 5 seconds

	if sqliteURL, ok = os.LookupEnv("TUTORIALS_SQLITE_URL"); !ok {
		logger.LogAttrs(ctx, slog.LevelError, "TUTORIALS_SQLITE_URL not set")
		os.Exit(1)
	}

	var db *sqlite.Database
	if db, err = sqlite.NewDatabase(ctx, sqliteURL, logger); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating database",
			slog.String("url", sqliteURL), errors.SlogError(err))
		os.Exit(1)
	}

	var sessions int
	if err = db.ReadOnly.GetContext(ctx, &sessions, `SELECT COUNT(*) FROM sessions`); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching session count", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "session count", slog.Int("count", sessions))

	var photos int
	if photos, err = repositories.NewPhotoRepository(db, logger).Count(ctx); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error fetching photo count", errors.SlogError(err))
		os.Exit(1)
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "cached photo count", slog.Int("count", photos))

	if err = db.Close(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error closing database", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Migration test successful 🙌", slog.Duration("duration", time.Since(start)))
	cancel()
	os.Exit(0)
}
