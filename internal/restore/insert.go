package restore

import (
	"fmt"
	"strings"

	"github.com/clusterwm/acctarchive/internal/acct"
	"github.com/clusterwm/acctarchive/internal/wire"
)

// buildInsertSQL reconstructs the single multi-row INSERT spec.md §4.5
// describes from an unpacked archive: one tuple per record, in column
// order, every field single-quoted text.
func buildInsertSQL(h wire.Header, records []any) (string, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("restore: archive for %s/%s has no records", h.ClusterName, h.Kind)
	}

	cols := acct.Columns(h.Kind)
	table := fmt.Sprintf("%s_%s", h.ClusterName, h.Kind.Table())

	tuples := make([]string, 0, len(records))
	for i, rec := range records {
		values := acct.ValuesOf(h.Kind, rec)
		if len(values) != len(cols) {
			return "", fmt.Errorf("restore: record %d has %d fields, want %d", i, len(values), len(cols))
		}
		quoted := make([]string, len(values))
		for j, v := range values {
			quoted[j] = "'" + escapeSQLString(v) + "'"
		}
		tuples = append(tuples, "("+strings.Join(quoted, ", ")+")")
	}

	return fmt.Sprintf("insert into %q (%s) values %s;",
		table, strings.Join(cols, ", "), strings.Join(tuples, ", ")), nil
}

func escapeSQLString(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
