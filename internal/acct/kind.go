// Package acct declares the five accounting record kinds that flow
// through the archive/purge/restore pipeline. Every field is text on the
// wire (SPEC_FULL.md §9) — numeric and enumerated values are stringified
// by the producer and re-parsed by the consumer on restore. Each kind's
// field list here is the single source of truth for both the cursor
// packer's SQL column order and the wire codec's current-version field
// order (SPEC_FULL.md §4.1 Supplemented Features), so the two can't drift
// the way the original C source's job columns did.
package acct

// Kind identifies one of the five accounting record kinds.
type Kind uint16

const (
	KindEvent Kind = iota
	KindJob
	KindReservation
	KindStep
	KindSuspend
)

func (k Kind) String() string {
	switch k {
	case KindEvent:
		return "event"
	case KindJob:
		return "job"
	case KindReservation:
		return "reservation"
	case KindStep:
		return "step"
	case KindSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}

// Table returns the per-cluster table suffix for this kind, e.g.
// "event_table" combines with a cluster name as "<cluster>_event_table".
func (k Kind) Table() string {
	switch k {
	case KindEvent:
		return "event_table"
	case KindJob:
		return "job_table"
	case KindReservation:
		return "resv_table"
	case KindStep:
		return "step_table"
	case KindSuspend:
		return "suspend_table"
	default:
		return "unknown_table"
	}
}

// HonorsDeleted reports whether rows of this kind carry a soft-delete
// flag that purge/restore must respect (SPEC_FULL.md §3: job and step
// only).
func (k Kind) HonorsDeleted() bool {
	return k == KindJob || k == KindStep
}

// TimeKeyColumn returns the column used as the primary time key for
// ordering, horizon comparisons, and archive window bounds.
//
// Reservations use "time_start" directly. The C original looked up the
// reservation purge column through the step table's time_start index;
// that yields the same string, so the indirection is not reproduced.
func (k Kind) TimeKeyColumn() string {
	switch k {
	case KindJob:
		return "time_submit"
	default:
		return "time_start"
	}
}
