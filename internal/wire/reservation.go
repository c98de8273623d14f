package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackReservation appends r in the current wire layout.
func PackReservation(buf *Buffer, r *acct.Reservation) {
	buf.PackStrings(r.Values())
}

// UnpackReservation reads one Reservation encoded at version v, applying
// the same pre-TRES cpu-count synthesis as UnpackEvent.
func UnpackReservation(buf *Buffer, v Version) (acct.Reservation, error) {
	if v < VersionLegacyDBD {
		return acct.Reservation{}, &UnsupportedVersionError{Kind: "reservation", Version: v, Reason: "too old to decode"}
	}
	if v < VersionTRES {
		fields, err := buf.UnpackStrings("reservation", 9)
		if err != nil {
			return acct.Reservation{}, err
		}
		cpuCount := fields[8]
		fields[8] = synthesizeCPUTRES(cpuCount)
		return acct.ReservationFromValues(fields), nil
	}
	fields, err := buf.UnpackStrings("reservation", len(acct.ReservationColumns))
	if err != nil {
		return acct.Reservation{}, err
	}
	return acct.ReservationFromValues(fields), nil
}
