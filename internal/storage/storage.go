// Package storage selects and opens the tool store named by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"rent-a-tool/internal/config"
	"rent-a-tool/internal/logger"
	"rent-a-tool/internal/repository"
	"rent-a-tool/internal/repository/memory"
	"rent-a-tool/internal/repository/postgres"
)

// Backend is an opened tool store
type Backend struct {
	Tools repository.ToolRepository
	Type  string
	db    *sql.DB
}

// Close releases the database connection, if any
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}

// Open returns the backend for cfg.Storage.Type
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.Storage.Type {
	case config.StorageTypeMemory:
		logger.Info("Using in-memory tool storage", "seed_catalog", cfg.Storage.SeedCatalog)
		tools := memory.NewToolRepository()
		if cfg.Storage.SeedCatalog {
			tools = memory.NewSeededToolRepository()
		}
		return &Backend{Tools: tools, Type: config.StorageTypeMemory}, nil

	case config.StorageTypePostgres:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString())
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		backend, err := openPostgres(ctx, db, cfg.Storage.SeedCatalog)
		if err != nil {
			db.Close()
			return nil, err
		}
		return backend, nil

	default:
		return nil, fmt.Errorf("unsupported storage type: %q", cfg.Storage.Type)
	}
}

func openPostgres(ctx context.Context, db *sql.DB, seed bool) (*Backend, error) {
	store := postgres.NewStore(db)
	if err := store.EnsureSchema(ctx, seed); err != nil {
		return nil, fmt.Errorf("prepare schema: %w", err)
	}
	return &Backend{Tools: store.ToolRepository, Type: config.StorageTypePostgres, db: db}, nil
}
