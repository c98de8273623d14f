// Package sqlstore implements purge.Executor and restore.Executor
// against a real MySQL-compatible accounting database,
// using database/sql and the pure-Go go-sql-driver/mysql driver.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/clusterwm/acctarchive/internal/cursor"
	"github.com/clusterwm/acctarchive/internal/errcode"
)

// Store owns the connection pool to the accounting database.
type Store struct {
	db *sql.DB
}

// Open connects to dsn (a go-sql-driver/mysql DSN) and verifies
// connectivity.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errcode.Wrap(errcode.SQLError, "sqlstore.Open", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errcode.Wrap(errcode.SQLError, "sqlstore.Open", err)
	}
	return &Store{db: db}, nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying pool for callers that need direct access.
// Restore does not use it; it goes through RestoreExecutor and Exec.
func (s *Store) DB() *sql.DB {
	return s.db
}

// NewExecutor returns a purge.Executor backed by this store. Each
// executor manages its own transaction lifecycle: a transaction is
// opened lazily on the first Query or Delete and a fresh one is opened
// automatically after each Commit, so the caller can drive repeated
// query/delete/commit cycles (one per purge batch) without managing
// *sql.Tx itself.
func (s *Store) NewExecutor() *TxExecutor {
	return &TxExecutor{db: s.db}
}

// TxExecutor adapts a *sql.DB to purge.Executor.
type TxExecutor struct {
	db *sql.DB
	tx *sql.Tx
}

var (
	sqlTracer = otel.Tracer("github.com/clusterwm/acctarchive/sqlstore")

	sqlMetrics struct {
		retryCount    metric.Int64Counter
		queryDuration metric.Float64Histogram
	}
)

func init() {
	m := otel.Meter("github.com/clusterwm/acctarchive/sqlstore")
	sqlMetrics.retryCount, _ = m.Int64Counter("acctarchive.sql.retry_count",
		metric.WithDescription("SQL operations retried after a transient error"),
		metric.WithUnit("{retry}"),
	)
	sqlMetrics.queryDuration, _ = m.Float64Histogram("acctarchive.sql.duration_ms",
		metric.WithDescription("Duration of SQL statements issued by the purge executor"),
		metric.WithUnit("ms"),
	)
}

const retryMaxElapsed = 30 * time.Second

func newRetryBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = retryMaxElapsed
	return bo
}

// isRetryableSQLError reports whether err looks like a transient
// connection fault worth retrying rather than a real query failure.
func isRetryableSQLError(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	for _, sub := range []string{
		"driver: bad connection",
		"invalid connection",
		"broken pipe",
		"connection reset",
		"connection refused",
		"lost connection",
		"gone away",
		"i/o timeout",
	} {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func (e *TxExecutor) withRetry(ctx context.Context, op func() error) error {
	attempts := 0
	bo := newRetryBackoff()
	err := backoff.Retry(func() error {
		attempts++
		err := op()
		if err == nil {
			return nil
		}
		if isRetryableSQLError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx))
	if attempts > 1 {
		sqlMetrics.retryCount.Add(ctx, int64(attempts-1))
	}
	return err
}

func (e *TxExecutor) ensureTx(ctx context.Context) (*sql.Tx, error) {
	if e.tx != nil {
		return e.tx, nil
	}
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errcode.Wrap(errcode.SQLError, "sqlstore.ensureTx", err)
	}
	e.tx = tx
	return tx, nil
}

// Query runs a row-locking SELECT inside the executor's open
// transaction. *sql.Rows already satisfies cursor.RowScanner.
func (e *TxExecutor) Query(ctx context.Context, query string) (cursor.RowScanner, error) {
	ctx, span := sqlTracer.Start(ctx, "sqlstore.Query", trace.WithAttributes(spanSQL(query)))
	defer span.End()

	var rows *sql.Rows
	start := time.Now()
	err := e.withRetry(ctx, func() error {
		tx, err := e.ensureTx(ctx)
		if err != nil {
			return err
		}
		rows, err = tx.QueryContext(ctx, query)
		return err
	})
	sqlMetrics.queryDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, errcode.Wrap(errcode.SQLError, "sqlstore.Query", err)
	}
	return rows, nil
}

// Delete runs a batched DELETE inside the executor's open transaction
// and reports how many rows it removed.
func (e *TxExecutor) Delete(ctx context.Context, query string) (int64, error) {
	ctx, span := sqlTracer.Start(ctx, "sqlstore.Delete", trace.WithAttributes(spanSQL(query)))
	defer span.End()

	var affected int64
	start := time.Now()
	err := e.withRetry(ctx, func() error {
		tx, err := e.ensureTx(ctx)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, query)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	sqlMetrics.queryDuration.Record(ctx, float64(time.Since(start).Milliseconds()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, errcode.Wrap(errcode.SQLError, "sqlstore.Delete", err)
	}
	return affected, nil
}

// Commit commits the open transaction. The next Query or Delete call
// begins a new one.
func (e *TxExecutor) Commit(ctx context.Context) error {
	if e.tx == nil {
		return nil
	}
	err := e.tx.Commit()
	e.tx = nil
	if err != nil {
		return errcode.Wrap(errcode.SQLError, "sqlstore.Commit", err)
	}
	return nil
}

func spanSQL(q string) attribute.KeyValue {
	if len(q) > 300 {
		q = q[:300] + "…"
	}
	return attribute.String("db.statement", q)
}

// Exec runs a one-shot statement outside of any purge transaction,
// used by internal/restore to insert reconstructed rows.
func (s *Store) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, errcode.Wrap(errcode.SQLError, "sqlstore.Exec", fmt.Errorf("%s: %w", truncate(query), err))
	}
	return res, nil
}

func truncate(s string) string {
	if len(s) > 120 {
		return s[:120] + "…"
	}
	return s
}

// RestoreExecutor adapts Store to restore.Executor: a single
// statement run outside of any purge transaction.
type RestoreExecutor struct {
	Store *Store
}

func (r RestoreExecutor) Exec(ctx context.Context, query string) error {
	_, err := r.Store.Exec(ctx, query)
	return err
}
