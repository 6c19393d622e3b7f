// Package server assembles the songkeeper server: configuration, storage,
// services, and the HTTP layer, plus coordinated startup and shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/songkeeper/internal/logging"
	"github.com/dmitrijs2005/songkeeper/internal/server/config"
	"github.com/dmitrijs2005/songkeeper/internal/server/httpapi"
	"github.com/dmitrijs2005/songkeeper/internal/server/shared/db"
	"github.com/dmitrijs2005/songkeeper/internal/server/songs"
	"github.com/dmitrijs2005/songkeeper/internal/server/users"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager db.RepositoryManager
	server  *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	var manager db.RepositoryManager
	if cfg.DatabaseDSN == "" {
		logger.Warn(ctx, "no database DSN configured, using in-memory storage")
		manager = db.NewInMemoryRepositoryManager()
	} else {
		var err error
		manager, err = db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
	}

	userService, err := users.NewService(manager.Users())
	if err != nil {
		return nil, err
	}
	songService := songs.NewService(manager.Songs())

	return &App{
		config:  cfg,
		logger:  logger,
		manager: manager,
		server:  httpapi.NewServer(cfg, logger, userService, songService),
	}, nil
}

// Run serves until the context is cancelled or a termination signal
// arrives, then shuts down the HTTP server and releases storage.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	var wg sync.WaitGroup
	errCh := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := a.server.Run(ctx); err != nil {
			errCh <- err
			stop()
		}
	}()

	<-ctx.Done()
	wg.Wait()

	if err := a.manager.Close(); err != nil {
		a.logger.Error(ctx, "closing storage", "error", err)
	}
	a.logger.Info(ctx, "Shutdown complete")

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
