package encoding

import (
	"errors"
	"io"
)

// ErrOverflow is returned when a LEB128 sequence would overflow a uint64.
var ErrOverflow = errors.New("encoding: leb128 varint overflows uint64")

// PutUvarint appends v to buf as an unsigned LEB128 varint and returns the
// resulting slice.
//
// Both dbx string-pool indices (tag names, attributes, string content) and
// the element count and width of dbx numeric vectors use this encoding.
func PutUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// ReadUvarint reads one unsigned LEB128 varint from r.
//
// Returns io.ErrUnexpectedEOF if the byte stream ends mid-sequence (a
// continuation bit was set on the final byte read), or ErrOverflow if the
// sequence runs past 10 bytes without terminating.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	var result uint64
	var shift uint

	for i := 0; i < 10; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && i > 0 {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}

		result |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return result, nil
		}
		shift += 7
	}

	return 0, ErrOverflow
}
