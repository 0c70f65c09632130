package main

import (
	"context"
	"fmt"

	"outing-board-backend/internal/config"
	"outing-board-backend/internal/database"
	apperrors "outing-board-backend/internal/errors"
	"outing-board-backend/internal/repository"
)

// openStore builds the key-value backend selected by KV_BACKEND
func openStore(ctx context.Context, cfg *config.Config) (repository.KeyValueRepositoryInterface, error) {
	switch cfg.KVBackend {
	case config.KVBackendMemory:
		return repository.NewMemoryKeyValueRepository(), nil
	case config.KVBackendFile:
		return repository.NewFileKeyValueRepository(cfg.KVFilePath)
	case config.KVBackendSQLite:
		return repository.NewSQLiteKeyValueRepository(ctx, cfg.KVSQLitePath)
	case config.KVBackendPostgres:
		db, err := database.Initialize(cfg.DatabaseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("initialize database: %w", err)
		}
		return repository.NewGormKeyValueRepository(db), nil
	default:
		return nil, fmt.Errorf("%w %q", apperrors.ErrUnknownKVBackend, cfg.KVBackend)
	}
}
