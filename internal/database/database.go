// Package database opens the configured user store.
package database

import (
	"context"
	"database/sql"
	"fmt"

	"mylibrary-user/internal/config"
	"mylibrary-user/internal/repository"
	"mylibrary-user/internal/repository/postgres"
	"mylibrary-user/internal/repository/sqlite"
)

// OpenUsers connects to the configured driver and bootstraps the users table.
// The caller closes the returned *sql.DB.
func OpenUsers(ctx context.Context, cfg config.Config) (repository.UserRepository, *sql.DB, error) {
	var (
		db   *sql.DB
		repo repository.UserRepository
		err  error
	)
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err = sqlite.Open(cfg.Database.Path)
		if err == nil {
			repo = sqlite.NewUserRepository(db)
		}
	case config.DriverPostgres:
		db, err = postgres.Open(ctx, cfg.Database.DSN)
		if err == nil {
			repo = postgres.NewUserRepository(db)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := repo.Init(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("init user repository: %w", err)
	}
	return repo, db, nil
}
