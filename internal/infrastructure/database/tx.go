package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"kidfun/internal/infrastructure/database/sqlc_generated"
	"kidfun/internal/ports/output"
)

var _ output.TxManager = (*TxManager)(nil)

type txKey struct{}

// TxManager runs use-case writes inside one pgx transaction. The tx-bound
// Queries travels in the context; repositories resolve it via queriesFrom,
// so the same repository instances work inside and outside a transaction.
type TxManager struct {
	pool *pgxpool.Pool
	q    *sqlc_generated.Queries
}

func NewTxManager(pool *pgxpool.Pool, q *sqlc_generated.Queries) *TxManager {
	return &TxManager{pool: pool, q: q}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ctx = context.WithValue(ctx, txKey{}, m.q.WithTx(tx))
	if err := fn(ctx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// queriesFrom returns the transaction-bound Queries when ctx carries one.
func queriesFrom(ctx context.Context, base *sqlc_generated.Queries) *sqlc_generated.Queries {
	if q, ok := ctx.Value(txKey{}).(*sqlc_generated.Queries); ok {
		return q
	}
	return base
}
