// Package legacysql rewrites a pre-per-cluster-schema SQL dump into the
// current schema: one statement per cluster, tables renamed to
// "<cluster>_<table>", and columns renamed to their current names.
package legacysql

import "fmt"

// tableRenames maps an old, implicitly-single-cluster table name to the
// current per-cluster table's base name (before the "<cluster>_" prefix
// is applied).
var tableRenames = map[string]string{
	"job_table":           "job_table",
	"step_table":          "step_table",
	"suspend_table":       "suspend_table",
	"resv_table":          "resv_table",
	"event_table":         "event_table",
	"cluster_event_table": "event_table",
}

// resolveTable maps old to its current base name, or reports the
// unknown-table error spec.md §4.6 requires.
func resolveTable(old string) (string, error) {
	base, ok := tableRenames[old]
	if !ok {
		return "", fmt.Errorf("legacysql: unknown table %q", old)
	}
	return base, nil
}
