// Package recordcache persists raw catalog records keyed by lookup name.
// Every storage failure is logged and absorbed: a failed read behaves as a
// miss and a failed write is a no-op.
package recordcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/pokecard/internal/domain"
)

// kvStore is the string-keyed, string-valued backend. Get returns
// domain.ErrNotFound for absent keys. Set overwrites (last write wins).
type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Ping(ctx context.Context) error
}

// Store caches raw records under prefix + lowercase(name). Entries never expire.
type Store struct {
	log    *slog.Logger
	kv     kvStore
	prefix string
}

// NewStore creates a Store over kv. An empty prefix uses domain.DefaultCacheKeyPrefix.
func NewStore(logger *slog.Logger, kv kvStore, prefix string) *Store {
	if prefix == "" {
		prefix = domain.DefaultCacheKeyPrefix
	}
	return &Store{
		log:    logger.With("service", "recordcache"),
		kv:     kv,
		prefix: prefix,
	}
}

// Key returns the storage key for name.
func (s *Store) Key(name string) string {
	return domain.CacheKey(s.prefix, name)
}

// Get returns the cached record for name. The bool is false on a miss and on
// any read or decode failure.
func (s *Store) Get(ctx context.Context, name string) (domain.RawRecord, bool) {
	key := s.Key(name)

	payload, err := s.kv.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "cache read failed",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return nil, false
	}

	record, err := decodeRecord(payload)
	if err != nil {
		s.log.WarnContext(ctx, "cache entry unreadable",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, false
	}

	s.log.DebugContext(ctx, "cache hit", slog.String("key", key))
	return record, true
}

// Set stores record under name. Failures are logged and never returned.
func (s *Store) Set(ctx context.Context, name string, record domain.RawRecord) {
	key := s.Key(name)

	payload, err := json.Marshal(record)
	if err != nil {
		s.log.WarnContext(ctx, "cache encode failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.kv.Set(ctx, key, string(payload)); err != nil {
		s.log.WarnContext(ctx, "cache write failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	s.log.DebugContext(ctx, "cache write", slog.String("key", key), slog.Int("bytes", len(payload)))
}

// Ping reports whether the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.kv.Ping(ctx)
}

func decodeRecord(payload string) (domain.RawRecord, error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()

	var record domain.RawRecord
	if err := dec.Decode(&record); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if record == nil {
		return nil, errors.New("decode: null payload")
	}
	return record, nil
}
