package section

import (
	"encoding/binary"
	"fmt"

	"github.com/frankelstner/fbassets/encoding"
)

// FBRBDirectory is the framing around the (gunzipped) fbrb directory blob:
// version magic, string table, entry array, zipped flag and total
// payload length.
type FBRBDirectory struct {
	// StringTable is the concatenated, null-terminated path and
	// type-name strings the entries' offsets index into.
	StringTable []byte
	Entries     []FBRBEntry
	// Zipped reports whether the payload stream that follows the
	// directory in the archive is gzip-compressed.
	Zipped bool
	// PayloadLen is the total length of the (decompressed) payload
	// stream.
	PayloadLen uint32
}

// ReadFBRBDirectory parses a gunzipped directory blob.
func ReadFBRBDirectory(data []byte) (FBRBDirectory, error) {
	c := encoding.NewCursor(data)

	raw, err := c.Read(4)
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: magic: %w", err)
	}
	if binary.BigEndian.Uint32(raw) != FBRBDirectoryMagic {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: unsupported version %d", binary.BigEndian.Uint32(raw))
	}

	raw, err = c.Read(4)
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: string table length: %w", err)
	}
	strLen := binary.BigEndian.Uint32(raw)

	strTable, err := c.Read(int(strLen))
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: string table: %w", err)
	}

	raw, err = c.Read(4)
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: entry count: %w", err)
	}
	numEntries := binary.BigEndian.Uint32(raw)

	entries := make([]FBRBEntry, numEntries)
	for i := range entries {
		e, err := ReadFBRBEntry(c)
		if err != nil {
			return FBRBDirectory{}, fmt.Errorf("fbrb directory: entry %d: %w", i, err)
		}
		entries[i] = e
	}

	zippedByte, err := c.ReadByte()
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: zipped flag: %w", err)
	}

	raw, err = c.Read(4)
	if err != nil {
		return FBRBDirectory{}, fmt.Errorf("fbrb directory: payload length: %w", err)
	}

	return FBRBDirectory{
		StringTable: strTable,
		Entries:     entries,
		Zipped:      zippedByte != 0,
		PayloadLen:  binary.BigEndian.Uint32(raw),
	}, nil
}

// Append serializes the directory blob onto buf.
func (d FBRBDirectory) Append(buf []byte) []byte {
	var tmp [4]byte

	binary.BigEndian.PutUint32(tmp[:], FBRBDirectoryMagic)
	buf = append(buf, tmp[:]...)

	binary.BigEndian.PutUint32(tmp[:], uint32(len(d.StringTable)))
	buf = append(buf, tmp[:]...)
	buf = append(buf, d.StringTable...)

	binary.BigEndian.PutUint32(tmp[:], uint32(len(d.Entries)))
	buf = append(buf, tmp[:]...)
	for _, e := range d.Entries {
		buf = e.Append(buf)
	}

	if d.Zipped {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	binary.BigEndian.PutUint32(tmp[:], d.PayloadLen)
	buf = append(buf, tmp[:]...)

	return buf
}
