package database

import (
	"context"
	_ "embed"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// PoolOptions sizes the pgx pool backing the user, chat and task stores.
type PoolOptions struct {
	MaxConns int32
}

const defaultMaxConns = 8

// poolConfig parses dsn and applies the pool limits used by every store.
func poolConfig(dsn string, opts PoolOptions) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(normalizeDSN(dsn))
	if err != nil {
		return nil, errors.Wrap(err, "parse DB_URL")
	}
	cfg.MaxConns = opts.MaxConns
	if cfg.MaxConns <= 0 {
		cfg.MaxConns = defaultMaxConns
	}
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = time.Hour
	cfg.HealthCheckPeriod = time.Minute
	return cfg, nil
}

// Open builds the pool and pings it so a bad DB_URL fails at startup
// rather than on the first request.
func Open(ctx context.Context, dsn string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(dsn, opts)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return pool, nil
}

// Migrate applies schema.sql. Statements are idempotent so it is safe on
// every boot.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return errors.Wrap(err, "apply schema")
	}
	return nil
}

// normalizeDSN strips driver suffixes (postgres+asyncpg, postgresql+pgx)
// that pgx does not understand.
func normalizeDSN(dsn string) string {
	s := strings.TrimSpace(dsn)
	scheme, rest, ok := strings.Cut(s, "://")
	if !ok {
		return s
	}
	if base, _, found := strings.Cut(scheme, "+"); found && strings.HasPrefix(base, "postgres") {
		return base + "://" + rest
	}
	return s
}
