package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/pokecard/internal/adapter/memory"
	"github.com/heartmarshall/pokecard/internal/adapter/postgres"
	pgkv "github.com/heartmarshall/pokecard/internal/adapter/postgres/kv"
	"github.com/heartmarshall/pokecard/internal/adapter/provider/pokebuild"
	"github.com/heartmarshall/pokecard/internal/adapter/sqlite"
	sqlitekv "github.com/heartmarshall/pokecard/internal/adapter/sqlite/kv"
	"github.com/heartmarshall/pokecard/internal/config"
	"github.com/heartmarshall/pokecard/internal/service/recordcache"
	"github.com/heartmarshall/pokecard/internal/service/resolver"
)

// Components is the wired lookup pipeline shared by the server and the CLI.
type Components struct {
	Cache    *recordcache.Store
	Resolver *resolver.Service

	closers []func()
}

// NewComponents opens the configured cache backend and wires the record
// cache, the catalog client and the resolver. Call Close when done.
func NewComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	c := &Components{}

	var err error
	switch cfg.Cache.Driver {
	case config.CacheDriverSQLite:
		err = c.openSQLite(ctx, cfg, logger)
	case config.CacheDriverPostgres:
		err = c.openPostgres(ctx, cfg, logger)
	case config.CacheDriverMemory:
		c.Cache = recordcache.NewStore(logger, memory.NewKV(), cfg.Cache.KeyPrefix)
	default:
		err = fmt.Errorf("unknown cache driver %q", cfg.Cache.Driver)
	}
	if err != nil {
		c.Close()
		return nil, err
	}

	catalog := pokebuild.NewProvider(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, logger)
	c.Resolver = resolver.NewService(logger, c.Cache, catalog)

	logger.Info("lookup pipeline ready",
		slog.String("cache_driver", cfg.Cache.Driver),
		slog.String("catalog", cfg.Catalog.BaseURL),
	)

	return c, nil
}

func (c *Components) openSQLite(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := sqlite.Open(ctx, cfg.Cache.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite cache: %w", err)
	}
	c.closers = append(c.closers, func() { _ = db.Close() })

	c.Cache = recordcache.NewStore(logger, sqlitekv.New(db), cfg.Cache.KeyPrefix)
	return nil
}

func (c *Components) openPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres cache: %w", err)
	}
	c.closers = append(c.closers, pool.Close)

	if err := postgres.MigrateUp(ctx, pool); err != nil {
		return err
	}

	c.Cache = recordcache.NewStore(logger, pgkv.New(pool), cfg.Cache.KeyPrefix)
	return nil
}

// Close releases the cache backend. It is safe to call more than once.
func (c *Components) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
