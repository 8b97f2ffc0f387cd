package encoding

import "encoding/binary"

// ClassifySlot reports whether a 4-byte big-endian vector slot should be
// decoded as a signed int32 rather than a float32.
//
// This mirrors the original tool's heuristic exactly: reinterpret the
// slot as a signed int32, and call it an integer if its top byte is zero
// (a small non-negative value) or if the 9 bits spanning its sign and
// exponent equal 255 or -1 (the float32 bit pattern the original author
// found int32 payloads collided with in practice). Anything else is
// treated as a float32 and formatted with FormatFloat.
func ClassifySlot(raw [4]byte) bool {
	v := int32(binary.BigEndian.Uint32(raw[:]))
	if v>>24 == 0 {
		return true
	}

	exp := v >> 23

	return exp == 255 || exp == -1
}

// SentinelKind identifies a stride-4 marker detected across a width-4
// numeric vector.
type SentinelKind int

const (
	// SentinelNone means no uniform marker was found; classify normally.
	SentinelNone SentinelKind = iota
	// SentinelZero means every 4th slot (index 3, 7, 11, ...) is
	// 00 00 00 00, rendered in text form as *zero*.
	SentinelZero
	// SentinelNonzero means every 4th slot is CD CD CD CD, rendered in
	// text form as *nonzero*.
	SentinelNonzero
)

var (
	zeroMarker    = [4]byte{0x00, 0x00, 0x00, 0x00}
	nonzeroMarker = [4]byte{0xCD, 0xCD, 0xCD, 0xCD}
)

// DetectStride4 inspects every 4th slot of a width-4 vector whose length
// is a positive multiple of 4 and reports whether they uniformly carry
// the *zero* or *nonzero* sentinel marker.
//
// Vectors whose length isn't a positive multiple of 4, or whose stride-4
// slots aren't uniform, report SentinelNone: the caller should fall back
// to per-slot classification via ClassifySlot.
func DetectStride4(slots [][4]byte) SentinelKind {
	if len(slots) == 0 || len(slots)%4 != 0 {
		return SentinelNone
	}

	allZero, allNonzero := true, true
	for i := 3; i < len(slots); i += 4 {
		if slots[i] != zeroMarker {
			allZero = false
		}
		if slots[i] != nonzeroMarker {
			allNonzero = false
		}
	}

	switch {
	case allZero:
		return SentinelZero
	case allNonzero:
		return SentinelNonzero
	default:
		return SentinelNone
	}
}
