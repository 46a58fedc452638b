package store

import (
	"context"
	"fmt"

	"github.com/wellmind/wellmind/internal/config"
	"github.com/wellmind/wellmind/internal/logger"
	"github.com/wellmind/wellmind/migrations"
)

// Storages aggregates every repository backed by the shared database handle.
type Storages struct {
	UserRepository    UserRepository
	HistoryRepository HistoryRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories. Any failure here is fatal at startup.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error creating database connection: %w", err)
	}

	if err = migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		HistoryRepository: NewHistoryRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
