// Package storage opens the local SQLite store, applies embedded goose
// migrations, and vends the repositories bound to it.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avoskres/parlor/internal/migrations"
	"github.com/avoskres/parlor/internal/repositories/flavors"
	"github.com/avoskres/parlor/internal/repositories/users"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Store bundles the open database handle with its repositories. The handle is
// owned for the process lifetime; the caller is responsible for Close.
type Store struct {
	DB      *sql.DB
	Users   users.Repository
	Flavors flavors.Repository
}

// RunMigrations applies the embedded schema migrations. Safe to call on every
// startup: goose tracks applied versions in its own table.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the store at dsn and ensures the schema exists.
// Any failure here means the store is unavailable and is fatal to the caller.
func InitDatabase(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}

	return &Store{
		DB:      db,
		Users:   users.NewSQLiteRepository(db),
		Flavors: flavors.NewSQLiteRepository(db),
	}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.DB.Close()
}
