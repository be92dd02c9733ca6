// Package kv implements the record cache key-value backend using PostgreSQL.
package kv

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/pokecard/internal/adapter/postgres"
)

const tableName = "record_cache"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type db interface {
	postgres.Querier
	postgres.Pinger
}

// Repo stores cache payloads in the record_cache table.
type Repo struct {
	db db
}

// New creates a new key-value repository over a pool.
func New(pool db) *Repo {
	return &Repo{db: pool}
}

// Get returns the payload stored under key.
// Returns domain.ErrNotFound if the key is absent.
func (r *Repo) Get(ctx context.Context, key string) (string, error) {
	query, args, err := psql.
		Select("payload").
		From(tableName).
		Where(sq.Eq{"cache_key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("build select: %w", err)
	}

	var payload string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&payload); err != nil {
		return "", postgres.MapError(err, tableName, key)
	}

	return payload, nil
}

// Set upserts the payload under key. Concurrent writers race; the last write wins.
func (r *Repo) Set(ctx context.Context, key, value string) error {
	query, args, err := psql.
		Insert(tableName).
		Columns("cache_key", "payload").
		Values(key, value).
		Suffix("ON CONFLICT (cache_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, tableName, key)
	}

	return nil
}

// Ping checks database connectivity.
func (r *Repo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
