package postgresql

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/timepay/timepay-backend-go/internal/pkg/database"
)

// WithTransaction runs fn inside a transaction. fn returning an error
// rolls back; a panic rolls back and re-panics.
func WithTransaction(ctx context.Context, db database.TxBeginner, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			rollback(ctx, tx)
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		rollback(ctx, tx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil {
		slog.Error("Transaction rollback failed", "error", err)
	}
}

// GetQuerier returns the transaction carried in ctx, or the pool when
// the call is not transactional.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
