package wire

import (
	"fmt"

	"github.com/clusterwm/acctarchive/internal/errcode"
)

// CorruptRecordError reports a length prefix that runs past the end of
// the buffer, or any other structurally invalid encoding.
type CorruptRecordError struct {
	Kind   string
	Offset int
	Reason string
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt %s record at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func (e *CorruptRecordError) Unwrap() error {
	return errcode.ErrCorruptArchive
}

// UnsupportedVersionError reports a version newer than this codec knows,
// or older than a given kind's oldest decodable version.
type UnsupportedVersionError struct {
	Kind    string
	Version Version
	Reason  string
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported protocol version %d for %s record: %s", e.Version, e.Kind, e.Reason)
}

func (e *UnsupportedVersionError) Unwrap() error {
	return errcode.ErrIncompatibleVersion
}
