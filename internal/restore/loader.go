package restore

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/clusterwm/acctarchive/internal/legacysql"
	"github.com/clusterwm/acctarchive/internal/wire"
)

// Executor is the "external query executor" collaborator from
// spec.md §6, narrowed to the one operation restore needs: run a
// finished SQL statement against the live store.
type Executor interface {
	Exec(ctx context.Context, query string) error
}

// Loader replays archive artifacts against an Executor.
type Loader struct {
	Exec   Executor
	Logger *slog.Logger
}

// Result reports what a restore operation did.
type Result struct {
	Path       string
	Format     Format
	Statements int
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// RestoreBytes replays an in-memory archive artifact — the
// `archive_rec.insert` case from spec.md §4.5 already has its SQL text,
// so callers with a raw string in hand can skip straight to
// l.Exec.Exec themselves; this is for the `archive_rec.archive_file`
// case and for RestoreDir.
func (l *Loader) RestoreBytes(ctx context.Context, data []byte) (Result, error) {
	format := DetectFormat(data)

	statements, err := LoadStatements(l.logger(), data)
	if err != nil {
		return Result{Format: format}, err
	}

	for _, stmt := range statements {
		if err := l.Exec.Exec(ctx, stmt); err != nil {
			return Result{Format: format, Statements: 0}, fmt.Errorf("restore: exec: %w", err)
		}
	}
	return Result{Format: format, Statements: len(statements)}, nil
}

// RestoreFile reads path and replays it.
func (l *Loader) RestoreFile(ctx context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("restore: read %s: %w", path, err)
	}
	res, err := l.RestoreBytes(ctx, data)
	res.Path = path
	return res, err
}

// LoadStatements turns an archive artifact's raw bytes into the SQL
// statement(s) to run, without executing them. Legacy SQL dumps may
// rewrite into zero statements if every statement in them failed to
// parse (each failure already logged by legacysql.Rewrite); a binary
// archive always yields exactly one multi-row INSERT.
func LoadStatements(logger *slog.Logger, data []byte) ([]string, error) {
	switch DetectFormat(data) {
	case FormatLegacySQL:
		return legacysql.Rewrite(logger, string(data)), nil
	default:
		h, records, err := wire.UnpackArchive(data)
		if err != nil {
			return nil, fmt.Errorf("restore: unpack archive: %w", err)
		}
		stmt, err := buildInsertSQL(h, records)
		if err != nil {
			return nil, err
		}
		return []string{stmt}, nil
	}
}
