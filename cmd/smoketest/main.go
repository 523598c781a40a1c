package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/myrjola/tutorials/internal/e2etest"
	"github.com/myrjola/tutorials/internal/errors"
	"github.com/myrjola/tutorials/internal/identity"
	"github.com/myrjola/tutorials/internal/logging"
)

// TestRouteGuard logs in, visits a protected page, and logs out again.
func TestRouteGuard(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var (
		err  error
		path string
	)

	if _, path, err = client.GetDoc(ctx, "/home"); err != nil {
		return errors.Wrap(err, "visit home without marker")
	}
	if path != "/login" {
		return errors.New("guard let visitor without marker through", slog.String("path", path))
	}
	if _, path, err = client.Login(ctx, identity.User.String()); err != nil {
		return errors.Wrap(err, "login user")
	}
	if path != "/home" {
		return errors.New("login did not land on home", slog.String("path", path))
	}
	if _, _, err = client.GetDoc(ctx, "/data/server"); err != nil {
		return errors.Wrap(err, "visit server data page")
	}
	if _, path, err = client.Logout(ctx); err != nil {
		return errors.Wrap(err, "logout user")
	}
	if path != "/login" {
		return errors.New("logout did not land on login", slog.String("path", path))
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		url      = "https://" + hostname
		client   *e2etest.Client
		err      error
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestRouteGuard(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing route guard", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
