package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTxAttempts bounds how often a transaction is replayed after a
// serialization failure or deadlock.
const DefaultTxAttempts = 3

// TxManager runs callbacks inside a READ COMMITTED transaction carried by the context.
type TxManager struct {
	pool     *pgxpool.Pool
	attempts int
}

// NewTxManager creates a TxManager that replays a failed transaction up to
// DefaultTxAttempts times.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool, attempts: DefaultTxAttempts}
}

// RunInTx commits when fn returns nil and rolls back otherwise; a panic in fn
// rolls back and propagates. Called from inside another RunInTx, fn joins the
// outer transaction. An outermost transaction aborted by a serialization
// failure or deadlock is replayed from the start, so fn must not keep state
// across calls beyond what it reassigns.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= m.attempts; attempt++ {
		err = pgx.BeginTxFunc(ctx, m.pool, pgx.TxOptions{}, func(tx pgx.Tx) error {
			return fn(withTx(ctx, tx))
		})
		if err == nil || !retryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
