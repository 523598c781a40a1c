package photos

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/tutorials/internal/catalog"
	"github.com/myrjola/tutorials/internal/envstruct"
	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/logging"
	"github.com/myrjola/tutorials/internal/placeholder"
	"github.com/myrjola/tutorials/internal/repositories"
	"github.com/myrjola/tutorials/internal/sqlite"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "photos",
	Title: "Photo cache",
}

// config is read from the environment like the web application's. Flags take precedence.
type config struct {
	SQLiteURL       string        `env:"TUTORIALS_SQLITE_URL" envDefault:"./tutorials.sqlite"`
	UpstreamURL     string        `env:"TUTORIALS_UPSTREAM_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	UpstreamTimeout time.Duration `env:"TUTORIALS_SYNC_TIMEOUT" envDefault:"30s"`
}

var Sync = newSyncCommand()

func newSyncCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "photos-sync",
		GroupID: "photos",
		Short:   "Refresh the photo cache",
		Long: `Fetches all photos from the upstream API and replaces the cached copy served by /data/client.

Defaults come from TUTORIALS_SQLITE_URL, TUTORIALS_UPSTREAM_URL, and TUTORIALS_SYNC_TIMEOUT.`,
		Args: cobra.NoArgs,
		RunE: runSync,
	}
	cmd.Flags().String("sqlite-url", "", "path to the SQLite database")
	cmd.Flags().String("upstream-url", "", "base URL of the placeholder API")
	cmd.Flags().Duration("timeout", 0, "timeout for the whole sync")
	return cmd
}

func runSync(cmd *cobra.Command, _ []string) error {
	var cfg config
	if err := envstruct.Populate(&cfg, os.LookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}
	flags := cmd.Flags()
	var err error
	if flags.Changed("sqlite-url") {
		if cfg.SQLiteURL, err = flags.GetString("sqlite-url"); err != nil {
			return err
		}
	}
	if flags.Changed("upstream-url") {
		if cfg.UpstreamURL, err = flags.GetString("upstream-url"); err != nil {
			return err
		}
	}
	if flags.Changed("timeout") {
		if cfg.UpstreamTimeout, err = flags.GetDuration("timeout"); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.UpstreamTimeout)
	defer cancel()
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(cmd.ErrOrStderr(), nil)))

	count, err := sync(ctx, logger, cfg.SQLiteURL, cfg.UpstreamURL, cfg.UpstreamTimeout)
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "photo sync failed", errors.SlogError(err))
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "synced %d photos\n", count)
	return err
}

func sync(ctx context.Context, logger *slog.Logger, sqliteURL, upstreamURL string, timeout time.Duration) (int, error) {
	db, err := sqlite.NewDatabase(ctx, sqliteURL, logger)
	if err != nil {
		return 0, errors.Wrap(err, "open database", slog.String("url", sqliteURL))
	}
	defer func() {
		_ = db.Close()
	}()

	c := catalog.New(placeholder.New(upstreamURL, timeout), repositories.NewPhotoRepository(db, logger), logger)
	count, err := c.Sync(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "sync catalog")
	}
	return count, nil
}
