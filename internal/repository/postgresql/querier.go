package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/attendance-engine-go/internal/pkg/database"
)

// GetQuerier returns either the transaction carried in ctx or the pool.
// Repositories stay usable inside and outside transactions.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
