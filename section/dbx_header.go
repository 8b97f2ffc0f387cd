package section

import (
	"encoding/binary"
	"fmt"

	"github.com/frankelstner/fbassets/encoding"
)

// DBXHeader is the fixed-size portion of a dbx file immediately following
// the 8-byte magic.
type DBXHeader struct {
	// TotalOffset is the byte offset of the first payload element,
	// measured from the start of the file (RelOffset plus the 8-byte
	// magic and this 16-byte header). Decode does not read it.
	TotalOffset uint32
	// Zero is always 0 in every file the original tool produced.
	Zero uint32
	// RelOffset is the byte offset of the first payload element, measured
	// from the end of this header: the size of the string-offset table
	// plus the concatenated strings.
	RelOffset uint32
	// NumStrings is the number of entries in the string-offset table,
	// including the reserved empty string at index 0.
	NumStrings uint32
}

// ReadDBXHeader reads the 8-byte magic and the fixed header fields from c.
// Returns false (no error) if the magic does not match.
func ReadDBXHeader(c *encoding.Cursor) (DBXHeader, bool, error) {
	magic, err := c.Read(len(DBXMagic))
	if err != nil {
		return DBXHeader{}, false, err
	}
	for i, b := range DBXMagic {
		if magic[i] != b {
			return DBXHeader{}, false, nil
		}
	}

	raw, err := c.Read(DBXHeaderSize)
	if err != nil {
		return DBXHeader{}, false, fmt.Errorf("dbx header: %w", err)
	}

	h := DBXHeader{
		TotalOffset: binary.BigEndian.Uint32(raw[0:4]),
		Zero:        binary.BigEndian.Uint32(raw[4:8]),
		RelOffset:   binary.BigEndian.Uint32(raw[8:12]),
		NumStrings:  binary.BigEndian.Uint32(raw[12:16]),
	}

	return h, true, nil
}

// Append serializes the magic and header fields onto buf.
func (h DBXHeader) Append(buf []byte) []byte {
	buf = append(buf, DBXMagic[:]...)
	var tmp [4]byte

	binary.BigEndian.PutUint32(tmp[:], h.TotalOffset)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], h.Zero)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], h.RelOffset)
	buf = append(buf, tmp[:]...)
	binary.BigEndian.PutUint32(tmp[:], h.NumStrings)
	buf = append(buf, tmp[:]...)

	return buf
}
