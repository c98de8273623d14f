package purge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clusterwm/acctarchive/internal/acct"
	"github.com/clusterwm/acctarchive/internal/archivefile"
	"github.com/clusterwm/acctarchive/internal/cursor"
	"github.com/clusterwm/acctarchive/internal/errcode"
	"github.com/clusterwm/acctarchive/internal/wire"
)

// ScriptRunner delegates an entire pass to an external script instead of
// running the built-in archive/purge logic (spec.md §4.4's
// archive_script alternative path).
type ScriptRunner interface {
	Run(ctx context.Context, script, cluster string) error
}

// Driver runs archive_and_purge for one cluster at a time.
type Driver struct {
	Executor     Executor
	Writer       archivefile.Writer
	ScriptRunner ScriptRunner
	Logger       *slog.Logger
	Now          func() time.Time
}

// kindOrder is the ordering guarantee from spec.md §4.4/§5: steps
// before jobs so step-level foreign references are purged before their
// parent job row disappears.
var kindOrder = []acct.Kind{acct.KindEvent, acct.KindSuspend, acct.KindStep, acct.KindJob, acct.KindReservation}

// KindResult reports what happened for one record kind.
type KindResult struct {
	Kind          acct.Kind
	FilesWritten  []string
	RowsArchived  int64
	RowsPurged    int64
}

// Result is the outcome of one archive_and_purge call.
type Result struct {
	Cluster string
	Kinds   []KindResult
}

func (d *Driver) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d *Driver) kindConfig(c Conditions, kind acct.Kind) KindConfig {
	switch kind {
	case acct.KindEvent:
		return c.Event
	case acct.KindSuspend:
		return c.Suspend
	case acct.KindStep:
		return c.Step
	case acct.KindJob:
		return c.Job
	case acct.KindReservation:
		return c.Reservation
	default:
		return KindConfig{}
	}
}

// ArchiveAndPurge is the public operation from spec.md §4.4.
func (d *Driver) ArchiveAndPurge(ctx context.Context, clusterName string, conditions Conditions) (Result, error) {
	if err := conditions.Validate(); err != nil {
		return Result{}, err
	}

	if conditions.ArchiveScript != "" {
		if d.ScriptRunner == nil {
			return Result{}, errcode.Wrap(errcode.InvalidArg, "purge.ArchiveAndPurge",
				fmt.Errorf("archive_script set but no script runner configured"))
		}
		if err := d.ScriptRunner.Run(ctx, conditions.ArchiveScript, clusterName); err != nil {
			return Result{}, errcode.Wrap(errcode.SQLError, "purge.ArchiveAndPurge", err)
		}
		return Result{Cluster: clusterName}, nil
	}

	result := Result{Cluster: clusterName}
	for _, kind := range kindOrder {
		kc := d.kindConfig(conditions, kind)
		if !kc.Enabled {
			continue
		}
		kr, err := d.runKind(ctx, clusterName, kind, kc, conditions.ArchiveDir)
		if err != nil {
			return result, err
		}
		result.Kinds = append(result.Kinds, kr)
	}
	return result, nil
}

// runKind implements the per-kind loop of spec.md §4.4.
func (d *Driver) runKind(ctx context.Context, clusterName string, kind acct.Kind, kc KindConfig, archiveDir string) (KindResult, error) {
	ctx, span := purgeTracer.Start(ctx, "purge.runKind")
	defer span.End()

	kr := KindResult{Kind: kind}
	currEnd := Horizon(d.now(), kc.Granularity, kc.Retention)

	for {
		recordStart, found, err := d.oldestRecordTime(ctx, clusterName, kind, currEnd)
		if err != nil {
			return kr, err
		}
		if !found {
			break
		}

		window := NextWindow(currEnd, recordStart, kc.Granularity)

		if kc.ArchiveEnabled {
			archived, path, err := d.archiveWindow(ctx, clusterName, kind, window)
			if err != nil {
				d.logger().Error("archive window failed, skipping delete", "cluster", clusterName, "kind", kind.String(), "error", err)
				return kr, err
			}
			if archived > 0 {
				kr.FilesWritten = append(kr.FilesWritten, path)
				kr.RowsArchived += archived
				purgeMetrics.rowsArchived.Add(ctx, archived)
			}
		}

		purged, err := d.deleteWindow(ctx, clusterName, kind, window.End)
		if err != nil {
			return kr, err
		}
		kr.RowsPurged += purged
		purgeMetrics.rowsPurged.Add(ctx, purged)

		if window.End >= currEnd {
			break
		}
	}
	return kr, nil
}

func (d *Driver) oldestRecordTime(ctx context.Context, cluster string, kind acct.Kind, horizon int64) (int64, bool, error) {
	q := cursor.OldestRecordTime(kind, cluster, horizon)
	var rows cursor.RowScanner
	err := withRetry(ctx, func() error {
		var qerr error
		rows, qerr = d.Executor.Query(ctx, q)
		return qerr
	})
	if err != nil {
		return 0, false, errcode.Wrap(errcode.SQLError, "purge.oldestRecordTime", err)
	}
	values, err := cursor.ScanSingleColumn(rows)
	if err != nil {
		return 0, false, errcode.Wrap(errcode.SQLError, "purge.oldestRecordTime", err)
	}
	if len(values) == 0 {
		return 0, false, nil
	}
	var ts int64
	if _, scanErr := fmt.Sscanf(values[0], "%d", &ts); scanErr != nil {
		return 0, false, errcode.Wrap(errcode.SQLError, "purge.oldestRecordTime", scanErr)
	}
	return ts, true, nil
}

func (d *Driver) archiveWindow(ctx context.Context, cluster string, kind acct.Kind, window Window) (int64, string, error) {
	q := cursor.SelectWindow(kind, cluster, window.End)
	var rows cursor.RowScanner
	err := withRetry(ctx, func() error {
		var qerr error
		rows, qerr = d.Executor.Query(ctx, q)
		return qerr
	})
	if err != nil {
		return 0, "", errcode.Wrap(errcode.SQLError, "purge.archiveWindow", err)
	}

	values, periodStart, err := cursor.PackRows(rows, kind)
	if err != nil {
		return 0, "", errcode.Wrap(errcode.SQLError, "purge.archiveWindow", err)
	}
	if len(values) == 0 {
		return 0, "", nil
	}

	records := cursor.ToRecords(kind, values)
	h := wire.Header{Kind: kind, WallTime: d.now(), ClusterName: cluster}
	data := wire.PackArchive(h, records)

	path, err := d.Writer.Write(cluster, kind, periodStart, window.End, window.EffectiveGranule, data)
	if err != nil {
		return 0, "", errcode.Wrap(errcode.IOError, "purge.archiveWindow", err)
	}
	return int64(len(values)), path, nil
}

func (d *Driver) deleteWindow(ctx context.Context, cluster string, kind acct.Kind, horizon int64) (int64, error) {
	q := cursor.DeleteWindow(kind, cluster, horizon, MaxPurgeBatch)
	var total int64
	for {
		start := time.Now()
		var affected int64
		err := withRetry(ctx, func() error {
			var derr error
			affected, derr = d.Executor.Delete(ctx, q)
			return derr
		})
		purgeMetrics.deleteBatchMs.Record(ctx, float64(time.Since(start).Milliseconds()))
		if err != nil {
			return total, errcode.Wrap(errcode.SQLError, "purge.deleteWindow", err)
		}
		total += affected
		if err := d.Executor.Commit(ctx); err != nil {
			return total, errcode.Wrap(errcode.SQLError, "purge.deleteWindow", err)
		}
		if affected <= 0 {
			break
		}
	}
	return total, nil
}
