package cursor

import "github.com/clusterwm/acctarchive/internal/acct"

// ToRecords converts raw column-ordered string rows into the concrete
// record type wire.PackRecord expects for kind.
func ToRecords(kind acct.Kind, rows [][]string) []any {
	out := make([]any, len(rows))
	for i, row := range rows {
		switch kind {
		case acct.KindEvent:
			r := acct.EventFromValues(row)
			out[i] = &r
		case acct.KindJob:
			r := acct.JobFromValues(row)
			out[i] = &r
		case acct.KindReservation:
			r := acct.ReservationFromValues(row)
			out[i] = &r
		case acct.KindStep:
			r := acct.StepFromValues(row)
			out[i] = &r
		case acct.KindSuspend:
			r := acct.SuspendFromValues(row)
			out[i] = &r
		}
	}
	return out
}
