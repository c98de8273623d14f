package wire

import "encoding/binary"

// Buffer is a growable byte buffer for packing, and a read cursor for
// unpacking, the length-prefixed fields described in SPEC_FULL.md §3. A
// zero-length string means both "empty" and "absent" on the wire; only
// the array-task-id special case (SPEC_FULL.md §9) distinguishes them,
// and it does so with the literal 'NULL' sentinel rather than a wire-level
// flag.
//
// Unpacked strings never alias the read cursor: UnpackString returns a
// freshly allocated Go string (via string([]byte)), so callers may
// discard the Buffer immediately afterward. A Buffer's backing array
// must not be reused while any in-flight PackString call still holds a
// reference to caller-owned bytes; since PackString only ever appends
// copies into the Buffer's own slice, this is automatic.
type Buffer struct {
	data []byte // write cursor target / full read source
	pos  int     // read cursor
}

// NewBuffer returns an empty Buffer ready for packing, with cap
// preallocated to hint. A zero hint is fine; it just means more
// reallocation as fields are packed.
func NewBuffer(hint int) *Buffer {
	return &Buffer{data: make([]byte, 0, hint)}
}

// WrapBuffer returns a Buffer reading from an existing byte slice, for
// unpacking an archive file already loaded into memory.
func WrapBuffer(data []byte) *Buffer {
	return &Buffer{data: data}
}

// Bytes returns the packed data accumulated so far.
func (b *Buffer) Bytes() []byte { return b.data }

// Len returns the number of unread bytes remaining.
func (b *Buffer) Len() int { return len(b.data) - b.pos }

// PackString appends a length-prefixed string.
func (b *Buffer) PackString(s string) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s)))
	b.data = append(b.data, lenBuf[:]...)
	b.data = append(b.data, s...)
}

// PackUint16 appends a big-endian u16.
func (b *Buffer) PackUint16(v uint16) {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	b.data = append(b.data, buf[:]...)
}

// PackUint32 appends a big-endian u32.
func (b *Buffer) PackUint32(v uint32) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	b.data = append(b.data, buf[:]...)
}

// PackInt64 appends a big-endian i64.
func (b *Buffer) PackInt64(v int64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	b.data = append(b.data, buf[:]...)
}

// UnpackString reads a length-prefixed string. kind names the record
// kind for error messages.
func (b *Buffer) UnpackString(kind string) (string, error) {
	if b.Len() < 4 {
		return "", &CorruptRecordError{Kind: kind, Offset: b.pos, Reason: "truncated length prefix"}
	}
	n := binary.BigEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4
	if uint64(b.Len()) < uint64(n) {
		return "", &CorruptRecordError{Kind: kind, Offset: b.pos, Reason: "length prefix exceeds buffer remainder"}
	}
	s := string(b.data[b.pos : b.pos+int(n)])
	b.pos += int(n)
	return s, nil
}

// UnpackUint16 reads a big-endian u16.
func (b *Buffer) UnpackUint16(kind string) (uint16, error) {
	if b.Len() < 2 {
		return 0, &CorruptRecordError{Kind: kind, Offset: b.pos, Reason: "truncated u16"}
	}
	v := binary.BigEndian.Uint16(b.data[b.pos : b.pos+2])
	b.pos += 2
	return v, nil
}

// UnpackUint32 reads a big-endian u32.
func (b *Buffer) UnpackUint32(kind string) (uint32, error) {
	if b.Len() < 4 {
		return 0, &CorruptRecordError{Kind: kind, Offset: b.pos, Reason: "truncated u32"}
	}
	v := binary.BigEndian.Uint32(b.data[b.pos : b.pos+4])
	b.pos += 4
	return v, nil
}

// UnpackInt64 reads a big-endian i64.
func (b *Buffer) UnpackInt64(kind string) (int64, error) {
	if b.Len() < 8 {
		return 0, &CorruptRecordError{Kind: kind, Offset: b.pos, Reason: "truncated i64"}
	}
	v := binary.BigEndian.Uint64(b.data[b.pos : b.pos+8])
	b.pos += 8
	return int64(v), nil
}

// PackStrings appends each of fields in order, e.g. a record's Values().
func (b *Buffer) PackStrings(fields []string) {
	for _, f := range fields {
		b.PackString(f)
	}
}

// UnpackStrings reads exactly n length-prefixed strings.
func (b *Buffer) UnpackStrings(kind string, n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		s, err := b.UnpackString(kind)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
