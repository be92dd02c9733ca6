package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/pokecard/internal/config"
)

// Run is the server entry point. It loads configuration, wires the lookup
// pipeline, warms the cache with the default name and serves HTTP until ctx
// is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	return RunWithConfig(ctx, cfg, logger)
}

// RunWithConfig is Run with configuration and logger already resolved.
func RunWithConfig(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	comps, err := NewComponents(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer comps.Close()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      NewHandler(cfg, logger, comps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		comps.Resolver.Preload(gctx, cfg.Catalog.DefaultName)
		return nil
	})

	g.Go(func() error {
		return serve(gctx, srv, ln, cfg.Server.ShutdownTimeout, logger)
	})

	return g.Wait()
}
