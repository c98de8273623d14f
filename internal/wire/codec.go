package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackRecord dispatches to the kind-specific packer. v must be a
// concrete *acct.Event/*acct.Job/*acct.Reservation/*acct.Step/
// *acct.Suspend matching kind; callers build v from the same Kind they
// pass, so a mismatch is a programmer error and panics via the type
// assertion rather than returning an error.
func PackRecord(buf *Buffer, kind acct.Kind, v any) {
	switch kind {
	case acct.KindEvent:
		PackEvent(buf, v.(*acct.Event))
	case acct.KindJob:
		PackJob(buf, v.(*acct.Job))
	case acct.KindReservation:
		PackReservation(buf, v.(*acct.Reservation))
	case acct.KindStep:
		PackStep(buf, v.(*acct.Step))
	case acct.KindSuspend:
		PackSuspend(buf, v.(*acct.Suspend))
	default:
		panic("wire: unknown record kind")
	}
}

// UnpackRecord dispatches to the kind-specific unpacker and returns the
// concrete record as any; callers that know kind type-assert the result.
func UnpackRecord(buf *Buffer, kind acct.Kind, v Version) (any, error) {
	switch kind {
	case acct.KindEvent:
		return UnpackEvent(buf, v)
	case acct.KindJob:
		return UnpackJob(buf, v)
	case acct.KindReservation:
		return UnpackReservation(buf, v)
	case acct.KindStep:
		return UnpackStep(buf, v)
	case acct.KindSuspend:
		return UnpackSuspend(buf, v)
	default:
		return nil, &UnsupportedVersionError{Kind: kind.String(), Version: v, Reason: "unknown record kind"}
	}
}

// PackArchive assembles a complete archive payload: header followed by
// count records, all at VersionCurrent. h.Version and h.RecordCount are
// ignored and set from VersionCurrent and len(records); records must
// hold the right concrete record type for h.Kind.
func PackArchive(h Header, records []any) []byte {
	buf := NewBuffer(1024)
	h.Version = VersionCurrent
	h.RecordCount = uint32(len(records))
	PackHeader(buf, h)
	for _, r := range records {
		PackRecord(buf, h.Kind, r)
	}
	return buf.Bytes()
}

// UnpackArchive reads a header and its records from data.
func UnpackArchive(data []byte) (Header, []any, error) {
	buf := WrapBuffer(data)
	h, err := UnpackHeader(buf)
	if err != nil {
		return Header{}, nil, err
	}
	records := make([]any, 0, h.RecordCount)
	for i := uint32(0); i < h.RecordCount; i++ {
		rec, err := UnpackRecord(buf, h.Kind, h.Version)
		if err != nil {
			return Header{}, nil, err
		}
		records = append(records, rec)
	}
	return h, records, nil
}
