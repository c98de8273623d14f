package cursor

import (
	"database/sql"
	"strconv"

	"github.com/clusterwm/acctarchive/internal/acct"
)

// RowScanner is the minimal result-set shape PackRows needs. *sql.Rows
// satisfies it, but callers are never required to depend on
// database/sql directly — sqlstore's executor and any test fake both
// just need Next/Scan/Err.
type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// PackRows drains rows (already positioned by a SelectWindow query) into
// the record values each kind's Columns order expects, along with the
// smallest time-key value seen — the archive window's period start,
// needed for the archive filename.
//
// rows must already be scoped to exactly len(acct.Columns(kind)) select
// columns, in that order; SelectWindow guarantees this.
func PackRows(rows RowScanner, kind acct.Kind) (values [][]string, periodStart int64, err error) {
	n := len(acct.Columns(kind))
	timeIdx := timeKeyColumnIndex(kind)

	for rows.Next() {
		raw := make([]sql.NullString, n)
		dest := make([]any, n)
		for i := range raw {
			dest[i] = &raw[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, 0, err
		}

		row := make([]string, n)
		for i, v := range raw {
			if v.Valid {
				row[i] = v.String
			}
		}
		values = append(values, row)

		if t, convErr := strconv.ParseInt(row[timeIdx], 10, 64); convErr == nil {
			if periodStart == 0 || t < periodStart {
				periodStart = t
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return values, periodStart, nil
}

// ScanSingleColumn drains rows holding exactly one text column each,
// for the single-column OldestRecordTime query.
func ScanSingleColumn(rows RowScanner) ([]string, error) {
	var out []string
	for rows.Next() {
		var v sql.NullString
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out = append(out, v.String)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// timeKeyColumnIndex returns the position of the kind's time-key column
// within acct.Columns(kind), matching SelectWindow's column order.
func timeKeyColumnIndex(kind acct.Kind) int {
	cols := acct.Columns(kind)
	target := kind.TimeKeyColumn()
	for i, c := range cols {
		if c == target {
			return i
		}
	}
	return 0
}
