package restype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToType(t *testing.T) {
	typ, ok := ToType("Wave")
	require.True(t, ok) // lookup lowercases its input, so "Wave" finds the "wave" key
	require.Equal(t, "Wave", typ)

	typ, ok = ToType("wave")
	require.True(t, ok)
	require.Equal(t, "Wave", typ)

	_, ok = ToType("unknownext")
	require.False(t, ok)
}

func TestToExtensionDeleted(t *testing.T) {
	require.Equal(t, "dbxdeleted", ToExtension("*deleted*", "foo/bar.dbx"))
	require.Equal(t, "resdeleted", ToExtension("*deleted*", "foo/bar.res"))
}

func TestToExtensionNonResource(t *testing.T) {
	require.Equal(t, "nonres", ToExtension("<non-resource>", "foo/bar.res"))
	require.Equal(t, "dbx", ToExtension("<non-resource>", "foo/bar.dbx"))
	require.Equal(t, "bin", ToExtension("<non-resource>", "foo/bar.bin"))
}

func TestToExtensionRoundTrip(t *testing.T) {
	typ, ok := ToType("grannymodel")
	require.True(t, ok)
	require.Equal(t, "grannymodel", ToExtension(typ, "whatever.res"))
}
