package wire

import "github.com/clusterwm/acctarchive/internal/acct"

// PackSuspend appends s. Suspend records have never changed shape across
// protocol versions, so there is no legacy branch to speak of.
func PackSuspend(buf *Buffer, s *acct.Suspend) {
	buf.PackStrings(s.Values())
}

func UnpackSuspend(buf *Buffer, v Version) (acct.Suspend, error) {
	if v < VersionLegacyDBD {
		return acct.Suspend{}, &UnsupportedVersionError{Kind: "suspend", Version: v, Reason: "too old to decode"}
	}
	fields, err := buf.UnpackStrings("suspend", len(acct.SuspendColumns))
	if err != nil {
		return acct.Suspend{}, err
	}
	return acct.SuspendFromValues(fields), nil
}
