// Package store opens the configured rate store.
package store

import (
	"context"
	"log/slog"

	"github.com/SscSPs/currency_converter/internal/adapters/database/memory"
	"github.com/SscSPs/currency_converter/internal/adapters/database/pgsql"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/platform/config"
	"github.com/SscSPs/currency_converter/pkg/database"
)

// Open builds the repositories for cfg.RateStore. The Postgres store runs
// migrations before the pool is handed to the repository, which then owns it.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	if cfg.RateStore != config.StorePostgres {
		logger.Info("Using in-memory rate store")
		return memory.NewRepositoryProvider(), nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		dbPool.Close()
		return portsrepo.RepositoryProvider{}, err
	}

	return pgsql.NewRepositoryProvider(dbPool), nil
}
