package store

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/hance08/tally/internal/config"
)

// Open returns the repository selected by cfg.Driver.
func Open(cfg config.StorageConfig, migrationsFS fs.FS, logger *slog.Logger) (Repository, error) {
	switch cfg.Driver {
	case config.DriverJSON:
		return NewJSONStore(cfg.Path, logger), nil
	case config.DriverSQLite:
		s, err := NewSQLiteStore(cfg.Path, migrationsFS, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
