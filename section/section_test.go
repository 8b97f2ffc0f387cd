package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankelstner/fbassets/encoding"
)

func TestDBXHeaderRoundTrip(t *testing.T) {
	h := DBXHeader{TotalOffset: 100, Zero: 0, RelOffset: 0, NumStrings: 5}
	buf := h.Append(nil)

	got, ok, err := ReadDBXHeader(encoding.NewCursor(buf))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, h, got)
}

func TestDBXHeaderBadMagic(t *testing.T) {
	_, ok, err := ReadDBXHeader(encoding.NewCursor([]byte("not a dbx file..........")))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFBRBEntryRoundTrip(t *testing.T) {
	e := FBRBEntry{
		PathOffset:    0,
		DeleteFlag:    FBRBFlagNonEmptyPayload,
		PayloadOffset: 10,
		PayloadLen:    20,
		ExtOffset:     30,
	}
	buf := e.Append(nil)
	require.Len(t, buf, FBRBEntrySize)

	got, err := ReadFBRBEntry(encoding.NewCursor(buf))
	require.NoError(t, err)
	require.Equal(t, e, got)
}

func TestFBRBEntryLengthMismatch(t *testing.T) {
	buf := make([]byte, FBRBEntrySize)
	buf[15] = 1 // first length copy = 1
	buf[19] = 2 // second length copy = 2

	_, err := ReadFBRBEntry(encoding.NewCursor(buf))
	require.Error(t, err)
}

func TestFBRBDirectoryRoundTrip(t *testing.T) {
	d := FBRBDirectory{
		StringTable: []byte("a.res\x00Wave\x00"),
		Entries: []FBRBEntry{
			{PathOffset: 0, DeleteFlag: FBRBFlagNonEmptyPayload, PayloadOffset: 0, PayloadLen: 4, ExtOffset: 6},
		},
		Zipped:     true,
		PayloadLen: 4,
	}
	buf := d.Append(nil)

	got, err := ReadFBRBDirectory(buf)
	require.NoError(t, err)
	require.Equal(t, d, got)
}
