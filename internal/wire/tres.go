package wire

// cpuTRESType is the TRES type id Slurm reserves for "cpu" (SPEC_FULL.md
// §4.1 Supplemented Features: archives older than VersionTRES carried a
// bare cpu count instead of a generic TRES string).
const cpuTRESType = "1"

// synthesizeCPUTRES turns a pre-TRES bare cpu count into the generic
// "type=count" TRES string format so callers downstream of decode never
// need to know a record came from an old archive.
func synthesizeCPUTRES(cpuCount string) string {
	if cpuCount == "" {
		return ""
	}
	return cpuTRESType + "=" + cpuCount
}
