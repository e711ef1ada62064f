package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// DB is the minimal liveness interface handlers need for health checks.
type DB interface {
	Ping(ctx context.Context) error
}

const (
	maxPoolConns   = 5
	connectTimeout = 5 * time.Second
	idleTimeout    = 45 * time.Second
)

// NewPool creates a PostgreSQL connection pool with the bounded sizing and
// timeouts the contact pipeline needs, and verifies it with a ping.
func NewPool(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = maxPoolConns
	cfg.MaxConnIdleTime = idleTimeout
	cfg.ConnConfig.ConnectTimeout = connectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

var (
	cachedMu   sync.Mutex
	cachedPool *pgxpool.Pool
)

// Connect returns a process-wide shared pool, dialing on first use. Callers in
// the stateless deployment shape invoke it on every request: a live cached pool
// is reused as-is, a dead one is discarded and re-dialed. Safe for concurrent
// callers.
func Connect(ctx context.Context, connString string) (*pgxpool.Pool, error) {
	cachedMu.Lock()
	defer cachedMu.Unlock()

	if cachedPool != nil {
		if err := cachedPool.Ping(ctx); err == nil {
			return cachedPool, nil
		}
		cachedPool.Close()
		cachedPool = nil
	}

	pool, err := NewPool(ctx, connString)
	if err != nil {
		return nil, err
	}
	cachedPool = pool
	return cachedPool, nil
}
