// Package kv implements the record cache key-value backend using a local SQLite file.
package kv

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/pokecard/internal/adapter/sqlite"
)

const tableName = "record_cache"

// Repo stores cache payloads in the record_cache table. *sql.DB serializes
// access to the file; concurrent writers to one key resolve as last write wins.
type Repo struct {
	db *sql.DB
}

// New creates a new key-value repository over an opened database.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Get returns the payload stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	var payload string
	err := sq.Select("payload").
		From(tableName).
		Where(sq.Eq{"cache_key": key}).
		RunWith(r.db).
		QueryRowContext(ctx).
		Scan(&payload)
	if err != nil {
		return "", sqlite.MapError(err, tableName, key)
	}
	return payload, nil
}

// Set upserts the payload under key.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	_, err := sq.Insert(tableName).
		Columns("cache_key", "payload").
		Values(key, value).
		Suffix("ON CONFLICT (cache_key) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP").
		RunWith(r.db).
		ExecContext(ctx)
	if err != nil {
		return sqlite.MapError(err, tableName, key)
	}
	return nil
}

// Ping checks that the database file is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlite: %w", err)
	}
	return nil
}
