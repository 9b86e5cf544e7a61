// Package database provides access to the PostgreSQL database backing the
// movie catalog.
package database

import (
	"context"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/movies-api/internal/config"
)

const pingTimeout = 3 * time.Second

// Conn is a database connection owned by a single operation. Callers must
// Release it once they are done.
type Conn interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Release()
}

type ConnectionFactory interface {
	CreateConnection(ctx context.Context) (Conn, error)
}

// PoolConnectionFactory hands out connections acquired from a pgx pool.
type PoolConnectionFactory struct {
	pool *pgxpool.Pool
}

func NewPoolConnectionFactory(pool *pgxpool.Pool) *PoolConnectionFactory {
	return &PoolConnectionFactory{
		pool: pool,
	}
}

func (f *PoolConnectionFactory) CreateConnection(ctx context.Context) (Conn, error) {
	conn, err := f.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	return conn, nil
}

// NewPool opens a pgx pool with tracing enabled and verifies the database is
// reachable before returning it.
func NewPool(cfg config.DBConfig) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.MaxIdleTime
	config.MaxConns = int32(cfg.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
