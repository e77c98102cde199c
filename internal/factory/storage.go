// Package factory builds the storage backend selected by configuration.
package factory

import (
	"context"
	"fmt"

	"yelpcamp/internal/config"
	"yelpcamp/internal/database"
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/repository"
	"yelpcamp/internal/repository/mongodb"

	"gorm.io/gorm/logger"
)

// NewStore opens the database named by cfg.DBDriver and returns a Store on it.
// The caller owns the Store and must Close it on shutdown.
func NewStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		opts := &database.Options{}
		if cfg.LogLevel == "debug" {
			opts.LogLevel = logger.Info
		}
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres: %w", err)
		}
		return repository.NewGormStore(db), nil

	case config.DriverMongo:
		client, db, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		return mongodb.NewStore(client, db, cfg.MongoUseTransactions), nil

	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownDriver, cfg.DBDriver)
	}
}
