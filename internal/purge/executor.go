package purge

import (
	"context"

	"github.com/clusterwm/acctarchive/internal/cursor"
)

// Executor is the query-executor contract from spec.md §6, scoped to
// exactly what the purge driver needs: run a row-locking SELECT inside
// the open transaction, run a batched DELETE and learn how many rows it
// removed, and commit. internal/sqlstore supplies the database/sql +
// MySQL implementation; tests supply an in-memory fake.
type Executor interface {
	Query(ctx context.Context, query string) (cursor.RowScanner, error)
	Delete(ctx context.Context, query string) (affected int64, err error)
	Commit(ctx context.Context) error
}
