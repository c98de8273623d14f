// Package cursor builds the SELECT ... FOR UPDATE queries that read a
// purgeable window of rows out of a per-cluster accounting table, and
// packs the results into a wire archive buffer without ever holding more
// than one window's rows in memory at a time.
package cursor

import (
	"fmt"
	"strings"

	"github.com/clusterwm/acctarchive/internal/acct"
)

// SelectWindow builds the query that selects every row of kind due for
// archiving in [cluster]_<table>, ordered by the kind's time key so the
// packed archive is naturally sorted. horizon is an inclusive upper
// bound in epoch seconds. FOR UPDATE locks the rows for the duration of
// the enclosing transaction, so a concurrent writer can't insert a new
// row into the same window between the SELECT and the paired DELETE.
//
// Event/reservation/suspend rows are only archived once their interval
// has actually closed (time_end != 0); job/step additionally exclude
// rows already soft-deleted, since a prior purge pass already archived
// those.
func SelectWindow(kind acct.Kind, cluster string, horizon int64) string {
	cols := strings.Join(acct.Columns(kind), ", ")
	table := fmt.Sprintf("%s_%s", cluster, kind.Table())
	timeCol := kind.TimeKeyColumn()

	cmp := "<="
	if kind == acct.KindJob {
		cmp = "<"
	}

	deletedClause := ""
	if kind.HonorsDeleted() {
		deletedClause = " AND deleted = 0"
	}

	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s %s %d AND time_end != 0%s ORDER BY %s ASC FOR UPDATE",
		cols, table, timeCol, cmp, horizon, deletedClause, timeCol,
	)
}

// OldestRecordTime builds the single-row query used to find the
// earliest purgeable record's time key, the basis for deciding whether a
// window needs the monthly catch-up split (SPEC_FULL.md §3).
func OldestRecordTime(kind acct.Kind, cluster string, horizon int64) string {
	table := fmt.Sprintf("%s_%s", cluster, kind.Table())
	timeCol := kind.TimeKeyColumn()
	cmp := "<="
	if kind == acct.KindJob {
		cmp = "<"
	}
	deletedClause := ""
	if kind.HonorsDeleted() {
		deletedClause = " AND deleted = 0"
	}
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s %s %d AND time_end != 0%s ORDER BY %s ASC LIMIT 1",
		timeCol, table, timeCol, cmp, horizon, deletedClause, timeCol,
	)
}

// DeleteWindow builds the batched DELETE paired with SelectWindow.
// Callers run it repeatedly, committing between batches, until it
// reports zero rows affected (SPEC_FULL.md §3 MAX_PURGE_LIMIT).
func DeleteWindow(kind acct.Kind, cluster string, horizon int64, batchSize int) string {
	table := fmt.Sprintf("%s_%s", cluster, kind.Table())
	timeCol := kind.TimeKeyColumn()
	cmp := "<="
	if kind == acct.KindJob {
		cmp = "<"
	}
	deletedClause := ""
	if kind.HonorsDeleted() {
		deletedClause = " AND deleted = 0"
	}
	return fmt.Sprintf(
		"DELETE FROM %s WHERE %s %s %d AND time_end != 0%s LIMIT %d",
		table, timeCol, cmp, horizon, deletedClause, batchSize,
	)
}
