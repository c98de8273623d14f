// Package archivefile writes packed wire buffers to durable archive
// files and names them the way the purge driver and restore loader both
// expect: cluster, record kind, and the closed time span the file
// covers.
package archivefile

import (
	"fmt"

	"github.com/clusterwm/acctarchive/internal/acct"
)

// Granularity is an archive-period unit (hours, days, months, years).
// Writers receive it alongside each window; FileName does not use it,
// and the window's start/end timestamps are embedded in the filename
// as given, without rounding.
type Granularity int

const (
	GranularityHours Granularity = iota
	GranularityDays
	GranularityMonths
	GranularityYears
)

// Writer is the archive writer's external contract (spec §4.3/§6):
// durably persist data under a name derived from (cluster, kind,
// window), refusing to silently overwrite a prior archive covering the
// same window.
type Writer interface {
	// Write persists data and returns the path it was written to. It
	// must not return success unless the file is durable on disk. A
	// second call with an identical (cluster, kind, periodStart,
	// periodEnd) tuple must fail rather than overwrite — the purge
	// driver depends on that to treat a write failure as "nothing
	// archived, skip the delete" rather than silent data loss.
	Write(cluster string, kind acct.Kind, periodStart, periodEnd int64, granularity Granularity, data []byte) (path string, err error)
}

// FileName builds the `<cluster>_<kind>_<start>_<end>` name spec.md §3
// specifies. periodStart and periodEnd are written exactly as passed;
// granularity is not part of the name.
func FileName(cluster string, kind acct.Kind, periodStart, periodEnd int64) string {
	return fmt.Sprintf("%s_%s_%d_%d", cluster, kind.String(), periodStart, periodEnd)
}
