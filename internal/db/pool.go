package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolOptions carries the deployment-tunable pool settings. Zero values fall
// back to defaults sized for a single API instance.
type PoolOptions struct {
	MaxConns      int32
	MinConns      int32
	MaxRetries    int
	RetryInterval time.Duration
}

func (o PoolOptions) withDefaults() PoolOptions {
	if o.MaxConns <= 0 {
		o.MaxConns = 10
	}
	if o.MinConns <= 0 {
		o.MinConns = 2
	}
	if o.MinConns > o.MaxConns {
		o.MinConns = o.MaxConns
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 5
	}
	if o.RetryInterval <= 0 {
		o.RetryInterval = 2 * time.Second
	}
	return o
}

// NewPool connects to Postgres with retry, so the API container can come up
// before the database finishes booting. Retry waits respect ctx cancellation.
func NewPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	opts = opts.withDefaults()

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = opts.MaxConns
	cfg.MinConns = opts.MinConns
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute
	cfg.HealthCheckPeriod = time.Minute

	var pool *pgxpool.Pool
	for attempt := 1; attempt <= opts.MaxRetries; attempt++ {
		pool, err = pgxpool.NewWithConfig(ctx, cfg)
		if err == nil {
			pingErr := pool.Ping(ctx)
			if pingErr == nil {
				log.Printf("database: pool ready (max_conns=%d min_conns=%d)", opts.MaxConns, opts.MinConns)
				return pool, nil
			}
			pool.Close()
			err = pingErr
		}

		log.Printf("database: connect attempt %d/%d failed: %v", attempt, opts.MaxRetries, err)
		if attempt < opts.MaxRetries {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(opts.RetryInterval):
			}
		}
	}

	return nil, fmt.Errorf("database unreachable after %d attempts: %w", opts.MaxRetries, err)
}
