package section

import (
	"encoding/binary"
	"fmt"

	"github.com/frankelstner/fbassets/encoding"
)

// FBRBEntry is one 24-byte directory record.
type FBRBEntry struct {
	// PathOffset is the byte offset of the entry's path within the
	// directory's string table.
	PathOffset uint32
	// DeleteFlag is FBRBFlagEmptyPayload or FBRBFlagNonEmptyPayload.
	DeleteFlag [4]byte
	// PayloadOffset is the byte offset of the entry's content within the
	// (decompressed) payload stream.
	PayloadOffset uint32
	// PayloadLen is the entry's content length. It is stored twice in
	// the wire format; both copies must agree.
	PayloadLen uint32
	// ExtOffset is the byte offset of the entry's canonical type-name
	// string within the directory's string table.
	ExtOffset uint32
}

// ReadFBRBEntry reads one 24-byte entry record from c.
func ReadFBRBEntry(c *encoding.Cursor) (FBRBEntry, error) {
	raw, err := c.Read(FBRBEntrySize)
	if err != nil {
		return FBRBEntry{}, fmt.Errorf("fbrb entry: %w", err)
	}

	len1 := binary.BigEndian.Uint32(raw[12:16])
	len2 := binary.BigEndian.Uint32(raw[16:20])
	if len1 != len2 {
		return FBRBEntry{}, fmt.Errorf("fbrb entry: duplicated length mismatch: %d != %d", len1, len2)
	}

	e := FBRBEntry{
		PathOffset:    binary.BigEndian.Uint32(raw[0:4]),
		PayloadOffset: binary.BigEndian.Uint32(raw[8:12]),
		PayloadLen:    len1,
		ExtOffset:     binary.BigEndian.Uint32(raw[20:24]),
	}
	copy(e.DeleteFlag[:], raw[4:8])

	return e, nil
}

// Append serializes the entry onto buf.
func (e FBRBEntry) Append(buf []byte) []byte {
	var tmp [4]byte

	binary.BigEndian.PutUint32(tmp[:], e.PathOffset)
	buf = append(buf, tmp[:]...)
	buf = append(buf, e.DeleteFlag[:]...)
	binary.BigEndian.PutUint32(tmp[:], e.PayloadOffset)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], e.PayloadLen)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], e.PayloadLen)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], e.ExtOffset)
	buf = append(buf, tmp[:]...)

	return buf
}
