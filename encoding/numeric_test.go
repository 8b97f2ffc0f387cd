package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySlot(t *testing.T) {
	require.True(t, ClassifySlot([4]byte{0x00, 0x00, 0x00, 0x01}), "small positive is int")
	require.True(t, ClassifySlot([4]byte{0xFF, 0xFF, 0xFF, 0xFF}), "-1 is int")
	require.False(t, ClassifySlot([4]byte{0x3F, 0x80, 0x00, 0x00}), "1.0f is float")
}

func TestDetectStride4(t *testing.T) {
	zeros := [][4]byte{{1, 0, 0, 0}, {0, 0, 0, 0}, {1, 0, 0, 0}, {0, 0, 0, 0}}
	require.Equal(t, SentinelZero, DetectStride4(zeros))

	nonzeros := [][4]byte{{1, 0, 0, 0}, {0xCD, 0xCD, 0xCD, 0xCD}, {1, 0, 0, 0}, {0xCD, 0xCD, 0xCD, 0xCD}}
	require.Equal(t, SentinelNonzero, DetectStride4(nonzeros))

	mixed := [][4]byte{
		{1, 0, 0, 0}, {1, 2, 3, 4}, {1, 0, 0, 0}, {0, 0, 0, 0},
		{1, 0, 0, 0}, {1, 0, 0, 0}, {1, 0, 0, 0}, {0xCD, 0xCD, 0xCD, 0xCD},
	}
	require.Equal(t, SentinelNone, DetectStride4(mixed))

	require.Equal(t, SentinelNone, DetectStride4([][4]byte{{1, 0, 0, 0}}))
}

func TestFormatFloat(t *testing.T) {
	require.Equal(t, "1.0", FormatFloat(1))
	require.Equal(t, "0.5", FormatFloat(0.5))
	require.Equal(t, "-0.5", FormatFloat(-0.5))
}
