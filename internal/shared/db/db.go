package db

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/shared/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPostgresPool creates the pgx connection pool every repository shares.
// The pool hands one connection per request and returns it when the tx completes,
// so there is no per-request open/close bookkeeping in the services.
func NewPostgresPool(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to DB: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database pool ping failed: %w", err)
	}

	return pool, nil
}
