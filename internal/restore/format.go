// Package restore replays an archive artifact — either a binary archive
// file or a legacy SQL text dump — back into the live accounting store.
package restore

import "strings"

// Format identifies how an archive artifact's bytes are encoded.
type Format int

const (
	FormatBinary Format = iota
	FormatLegacySQL
)

var legacySQLPrefixes = []string{
	"insert into ",
	"delete from ",
	"drop table ",
	"truncate table ",
}

// DetectFormat inspects the leading bytes of an archive artifact, the
// way spec.md §4.5 does: binary archives begin with a protocol-version
// u16 that never decodes to readable SQL keywords, so a simple text
// prefix check on the first 32 bytes (leading whitespace trimmed) is
// enough to tell the two apart.
func DetectFormat(data []byte) Format {
	head := data
	if len(head) > 32 {
		head = head[:32]
	}
	lower := strings.ToLower(strings.TrimLeft(string(head), " \t\r\n"))
	for _, prefix := range legacySQLPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return FormatLegacySQL
		}
	}
	return FormatBinary
}
