package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16384, 1 << 32, ^uint64(0)}

	for _, v := range values {
		buf := PutUvarint(nil, v)
		got, err := ReadUvarint(NewCursor(buf))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestReadUvarintTruncated(t *testing.T) {
	buf := []byte{0x80, 0x80}
	_, err := ReadUvarint(NewCursor(buf))
	require.Error(t, err)
}

func TestReadUvarintEmpty(t *testing.T) {
	_, err := ReadUvarint(NewCursor(nil))
	require.Error(t, err)
}
