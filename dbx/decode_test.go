package dbx

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankelstner/fbassets/encoding"
)

func TestFormatWidth4SlotInt(t *testing.T) {
	require.Equal(t, "5", formatWidth4Slot([4]byte{0x00, 0x00, 0x00, 0x05}))
}

func TestFormatWidth4SlotFloat(t *testing.T) {
	// 1.0f big-endian
	got := formatWidth4Slot([4]byte{0x3F, 0x80, 0x00, 0x00})
	require.Equal(t, "1.0", got)
}

func TestDecodeWidth4VectorHashesOverride(t *testing.T) {
	// HASHES fields always decode as plain ints, even with a float-like bit pattern.
	c := encoding.NewCursor([]byte{0x3F, 0x80, 0x00, 0x00})
	out, err := decodeWidth4Vector(c, 1, "Hash")
	require.NoError(t, err)
	require.Equal(t, "1065353216", out)
}

func TestDecodeWidth4VectorHashesWithSentinels(t *testing.T) {
	// HASHES only changes how non-marker slots format (plain int vs
	// int/float heuristic); stride-4 sentinel substitution still applies,
	// since markers are uniform across every 4th slot (index 3 and 7).
	raw := []byte{
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x03,
		0x00, 0x00, 0x00, 0x00, // *zero* marker slot
		0x00, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x06,
		0x00, 0x00, 0x00, 0x07,
		0x00, 0x00, 0x00, 0x00, // *zero* marker slot
	}
	c := encoding.NewCursor(raw)
	out, err := decodeWidth4Vector(c, 8, "Hash")
	require.NoError(t, err)
	require.Equal(t, "1/2/3/*zero*/5/6/7/*zero*", out)
}

func TestJoinSlash(t *testing.T) {
	require.Equal(t, "", joinSlash(nil))
	require.Equal(t, "1", joinSlash([]string{"1"}))
	require.Equal(t, "1/2/3", joinSlash([]string{"1", "2", "3"}))
}
