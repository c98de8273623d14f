package wire

import (
	"time"

	"github.com/clusterwm/acctarchive/internal/acct"
)

// Header is the fixed-layout prefix of every archive file: protocol
// version, the wall-clock time the archive was written, the record kind
// it carries, the owning cluster's name, and how many records follow
// (SPEC_FULL.md §4.1).
type Header struct {
	Version     Version
	WallTime    time.Time
	Kind        acct.Kind
	ClusterName string
	RecordCount uint32
}

// PackHeader appends h to buf. Callers pack records immediately after.
func PackHeader(buf *Buffer, h Header) {
	buf.PackUint16(uint16(h.Version))
	buf.PackInt64(h.WallTime.Unix())
	buf.PackUint16(uint16(h.Kind))
	buf.PackString(h.ClusterName)
	buf.PackUint32(h.RecordCount)
}

// UnpackHeader reads a Header from buf. It rejects VersionPreLegacy
// outright since no kind's decoder can make sense of it, and rejects any
// version newer than VersionCurrent since a newer writer may have added
// fields this codec doesn't know about.
func UnpackHeader(buf *Buffer) (Header, error) {
	v, err := buf.UnpackUint16("header")
	if err != nil {
		return Header{}, err
	}
	version := Version(v)
	if !Supported(version) {
		return Header{}, &UnsupportedVersionError{Kind: "header", Version: version, Reason: "outside known version range"}
	}
	if version == VersionPreLegacy {
		return Header{}, &UnsupportedVersionError{Kind: "header", Version: version, Reason: "pre-legacy archives cannot be decoded"}
	}

	wall, err := buf.UnpackInt64("header")
	if err != nil {
		return Header{}, err
	}
	kindRaw, err := buf.UnpackUint16("header")
	if err != nil {
		return Header{}, err
	}
	cluster, err := buf.UnpackString("header")
	if err != nil {
		return Header{}, err
	}
	count, err := buf.UnpackUint32("header")
	if err != nil {
		return Header{}, err
	}

	return Header{
		Version:     version,
		WallTime:    time.Unix(wall, 0).UTC(),
		Kind:        acct.Kind(kindRaw),
		ClusterName: cluster,
		RecordCount: count,
	}, nil
}
