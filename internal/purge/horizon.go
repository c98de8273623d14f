package purge

import (
	"time"

	"github.com/clusterwm/acctarchive/internal/archivefile"
)

// Horizon computes curr_end: the newest timestamp at which a record
// governed by (granularity, retention) becomes purgeable, as of now
// (spec.md §4.4 step 1).
func Horizon(now time.Time, granularity archivefile.Granularity, retention int) int64 {
	switch granularity {
	case archivefile.GranularityHours:
		return now.Add(-time.Duration(retention) * time.Hour).Unix()
	case archivefile.GranularityDays:
		return now.AddDate(0, 0, -retention).Unix()
	case archivefile.GranularityMonths:
		return now.AddDate(0, -retention, 0).Unix()
	case archivefile.GranularityYears:
		return now.AddDate(-retention, 0, 0).Unix()
	default:
		return now.Unix()
	}
}

// Window is one [record_start, window_end] span to process as a single
// archive file and its paired delete batches.
type Window struct {
	Start            int64
	End              int64
	MonthlyCatchup   bool
	EffectiveGranule archivefile.Granularity
}

// NextWindow computes the window for a purge pass given the overall
// horizon currEnd and the oldest purgeable record's time key recordStart
// (spec.md §4.4 step 3). When the oldest record is more than
// MaxArchiveAgeSeconds behind the horizon, the window is clipped to the
// first instant of the following calendar month and the granularity for
// this window only is overridden to monthly, regardless of the
// configured granularity — this is how a long-neglected cluster catches
// up without ever compressing the multi-year backlog into one giant
// archive file.
func NextWindow(currEnd, recordStart int64, granularity archivefile.Granularity) Window {
	if currEnd-recordStart > MaxArchiveAgeSeconds {
		nextMonth := archivefile.BeginningOfNextMonth(time.Unix(recordStart, 0).UTC()).Unix()
		end := currEnd
		if nextMonth < end {
			end = nextMonth
		}
		return Window{Start: recordStart, End: end, MonthlyCatchup: true, EffectiveGranule: archivefile.GranularityMonths}
	}
	return Window{Start: recordStart, End: currEnd, MonthlyCatchup: false, EffectiveGranule: granularity}
}
