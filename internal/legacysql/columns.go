package legacysql

// columnRenames are the context-independent legacy-to-current column
// name mappings from spec.md §4.6.
var columnRenames = map[string]string{
	"period_start": "time_start",
	"period_end":   "time_end",
	"cpu_count":    "count",
	"jobid":        "id_job",
	"stepid":       "id_step",
	"associd":      "id_assoc",
	"blockid":      "id_block",
	"wckeyid":      "id_wckey",
	"qos":          "id_qos",
	"uid":          "id_user",
	"gid":          "id_group",
	"submit":       "time_submit",
	"eligible":     "time_eligible",
	"start":        "time_start",
	"suspended":    "time_suspended",
	"end":          "time_end",
	"comp_code":    "exit_code",
	"alloc_cpus":   "cpus_alloc",
	"req_cpus":     "cpus_req",
	"alloc_nodes":  "nodes_alloc",
}

// renameColumn rewrites col to its current name. "name" and "id" are
// ambiguous in the legacy schema and resolve differently depending on
// which table they belong to (spec.md §4.6).
func renameColumn(col, table string) string {
	switch col {
	case "name":
		if table == "step_table" {
			return "step_name"
		}
		return "job_name"
	case "id":
		if table == "job_table" {
			return "job_db_inx"
		}
		return "id_assoc"
	}
	if renamed, ok := columnRenames[col]; ok {
		return renamed
	}
	return col
}
