// Package local is the offline side of the client: a single SQLite-backed
// key/value box opened once at process start, holding whole-collection
// snapshots for offline reads.
package local

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/Engineerbabu777/blog-app/internal/client/local/migrations"
	"github.com/Engineerbabu777/blog-app/internal/common"
	"github.com/Engineerbabu777/blog-app/internal/dbx"

	_ "modernc.org/sqlite"
)

// Box is a named key/value store over the local SQLite database.
type Box struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path and applies the
// embedded migrations.
func Open(ctx context.Context, path string) (*Box, *sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("cache open error: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("cache migration error: %w", err)
	}

	return NewBox(db), db, nil
}

// NewBox binds a Box to an existing database handle.
func NewBox(db *sql.DB) *Box {
	return &Box{db: db}
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

// Set overwrites the value stored under key.
func (b *Box) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO box (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := b.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set %q: %w", key, err)
	}
	return nil
}

// Get returns the value stored under key, or common.ErrNotFound.
func (b *Box) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM box WHERE key = ?`

	var value []byte
	if err := b.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %q: %w", key, err)
	}
	return value, nil
}

// Swap replaces the value stored under key, removing the previous row first.
// Both steps run in one transaction, so a reader never observes the slot
// between the delete and the insert.
func (b *Box) Swap(ctx context.Context, key string, value []byte) error {
	err := dbx.WithTx(ctx, b.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM box WHERE key = ?`, key); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO box (key, value) VALUES (?, ?)`, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to swap %q: %w", key, err)
	}
	return nil
}

// Clear removes the value stored under key. Clearing an absent key is a no-op.
func (b *Box) Clear(ctx context.Context, key string) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM box WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to clear %q: %w", key, err)
	}
	return nil
}
