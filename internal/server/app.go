// Package server initializes and runs the application server: it opens the
// database, applies migrations, wires the services, and starts the HTTP API
// with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hallowedlibrary/backend/internal/logging"
	"github.com/hallowedlibrary/backend/internal/server/auth"
	"github.com/hallowedlibrary/backend/internal/server/books"
	"github.com/hallowedlibrary/backend/internal/server/config"
	"github.com/hallowedlibrary/backend/internal/server/favorites"
	"github.com/hallowedlibrary/backend/internal/server/httpapi"
	"github.com/hallowedlibrary/backend/internal/server/shared/db"
	"github.com/hallowedlibrary/backend/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	repos  db.RepositoryManager
	server *http.Server
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(c.SecretKey), c.TokenValidityDuration)
	hasher := auth.NewPasswordHasher(c.BcryptCost)

	userService := users.NewService(rm.Users(), hasher, tokens)
	favoriteService := favorites.NewService(rm.Favorites(), rm.Users())
	catalog := books.NewClient(c.BooksAPIBaseURL, c.BooksAPIKey)

	api := httpapi.NewServer(logger, userService, favoriteService, catalog, tokens, splitOrigins(c.CORSAllowedOrigins))

	srv := &http.Server{
		Addr:    c.EndpointAddrHTTP,
		Handler: api.Handler(),
	}

	return &App{config: c, logger: logger, repos: rm, server: srv}, nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, "http server error", "error", err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err.Error())
	}
}
