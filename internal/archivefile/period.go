package archivefile

import "time"

// RoundPeriod rounds t down to the start of its containing unit of
// granularity, in UTC. This is the "timestamp-rounding policy" spec.md
// §3 leaves as an external collaborator's concern: a hint for where to
// draw a window boundary, not something the wire codec or purge driver
// ever inspects.
func RoundPeriod(t time.Time, g Granularity) time.Time {
	t = t.UTC()
	switch g {
	case GranularityHours:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, time.UTC)
	case GranularityDays:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	case GranularityMonths:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	case GranularityYears:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return t
	}
}

// BeginningOfNextMonth returns the first instant of the month after t,
// the boundary the monthly catch-up rule (spec.md §4.4) advances a
// window to.
func BeginningOfNextMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
