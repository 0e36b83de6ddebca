package main

import (
	"context"
	"fmt"
	"time"

	"realtyhub/catalog"
	"realtyhub/config"
	"realtyhub/services"
	"realtyhub/session"
	"realtyhub/storage"
	"realtyhub/utils"
)

// loadCatalog builds the repository from the configured source. Seed files
// and database rows go through the cleaner; the builtin seed is trusted.
func loadCatalog(ctx context.Context, c *config.Config, log *utils.Logger) (*catalog.Repository, error) {
	switch c.CatalogSource {
	case config.CatalogBuiltin, "":
		return catalog.Builtin(), nil

	case config.CatalogFile:
		seed, err := catalog.LoadFile(c.CatalogPath)
		if err != nil {
			return nil, err
		}
		cleaned := services.NewCleaner(log).Clean(seed.Listings)
		log.Info("[catalog] Loaded %d listings from %s", len(cleaned), c.CatalogPath)
		return catalog.New(cleaned, seed.Locations...), nil

	case config.CatalogPostgres:
		pc, err := openPostgres(ctx, c, log)
		if err != nil {
			return nil, err
		}
		defer pc.Close()

		rows, err := pc.FetchAll()
		if err != nil {
			return nil, err
		}
		cleaned := services.NewCleaner(log).Clean(rows)
		log.Info("[catalog] Loaded %d listings from PostgreSQL", len(cleaned))
		return catalog.New(cleaned), nil

	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.CatalogSource)
	}
}

func openPostgres(ctx context.Context, c *config.Config, log *utils.Logger) (*storage.PostgresCatalog, error) {
	retry := &utils.RetryConfig{MaxAttempts: c.MaxRetries, BaseDelay: 500 * time.Millisecond, Logger: log}
	pc, err := storage.NewPostgresCatalog(ctx, c.DSN(), retry)
	if err != nil {
		log.Error("Failed to connect to PostgreSQL: %v", err)
		return nil, err
	}
	return pc, nil
}

// openSessionStore returns the configured store and a func releasing it.
func openSessionStore(ctx context.Context, c *config.Config) (session.Store, func() error, error) {
	noop := func() error { return nil }

	switch c.SessionBackend {
	case config.SessionFile, "":
		return storage.NewFileSessionStore(c.SessionPath), noop, nil

	case config.SessionMemory:
		return storage.NewMemorySessionStore(), noop, nil

	case config.SessionRedis:
		rs := storage.NewRedisSessionStore(c.RedisAddr, c.RedisPassword, c.RedisKeyPrefix)
		if err := rs.Ping(ctx); err != nil {
			_ = rs.Close()
			return nil, nil, fmt.Errorf("redis: ping %s: %w", c.RedisAddr, err)
		}
		return rs, rs.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown session backend %q", c.SessionBackend)
	}
}

// openSession returns a hydrated manager. A store that fails to load leaves
// the manager anonymous; that is logged, not returned.
func openSession(ctx context.Context, c *config.Config, log *utils.Logger) (*session.Manager, func() error, error) {
	store, closeFn, err := openSessionStore(ctx, c)
	if err != nil {
		return nil, nil, err
	}

	mgr := session.NewManager(store, session.AlwaysAcceptProvider{Delay: c.SignInDelay()}, log)
	if err := mgr.Hydrate(); err != nil {
		log.Warn("[session] Starting signed out: %v", err)
	}
	return mgr, closeFn, nil
}
