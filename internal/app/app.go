package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/ledger"
	"github.com/hance08/tally/internal/service"
	"github.com/hance08/tally/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *slog.Logger
}

// NewApp opens the configured store, loads the ledger and returns the App
// with a cleanup func that closes the store.
func NewApp(ctx context.Context, cfg *config.Config, migrationFS fs.FS, logger *slog.Logger, opts ...ledger.Option) (*App, func(), error) {
	repo, err := store.Open(cfg.Storage, migrationFS, logger)
	if err != nil {
		return nil, nil, err
	}

	svc := service.NewService(repo, cfg, logger, opts...)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Error("failed to close store", "error", err)
		}
	}

	if err := svc.Transaction.Load(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize ledger: %w", err)
	}
	logger.Debug("ledger ready", "driver", cfg.Storage.Driver, "path", repo.Path(), "transactions", svc.Transaction.Summary().Count)

	return &App{
		Service: svc,
		Store:   repo,
		Logger:  logger,
	}, cleanup, nil
}
