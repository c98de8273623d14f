package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackEvent appends e in the current wire layout (acct.EventColumns order).
func PackEvent(buf *Buffer, e *acct.Event) {
	buf.PackStrings(e.Values())
}

// UnpackEvent reads one Event encoded at version v. Versions older than
// VersionTRES carried a bare cpu count in place of the tres field; it is
// synthesized into the current TRES string format on the way out.
func UnpackEvent(buf *Buffer, v Version) (acct.Event, error) {
	if v < VersionLegacyDBD {
		return acct.Event{}, &UnsupportedVersionError{Kind: "event", Version: v, Reason: "too old to decode"}
	}
	if v < VersionTRES {
		fields, err := buf.UnpackStrings("event", 8)
		if err != nil {
			return acct.Event{}, err
		}
		// legacy layout: ..., state, cpu_count (no separate tres field)
		cpuCount := fields[7]
		fields[7] = synthesizeCPUTRES(cpuCount)
		return acct.EventFromValues(fields), nil
	}
	fields, err := buf.UnpackStrings("event", len(acct.EventColumns))
	if err != nil {
		return acct.Event{}, err
	}
	return acct.EventFromValues(fields), nil
}
