package fbassets

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankelstner/fbassets/fbrb"
)

func TestDecodeEncodeDBXWrappers(t *testing.T) {
	xmlIn := []byte("<?xml version=\"1.0\"?>\r\n<root>\r\n\t<Leaf />\r\n</root>\r\n")

	bin, err := EncodeDBX(xmlIn)
	require.NoError(t, err)
	require.NotNil(t, bin)

	xmlOut, err := DecodeDBX(bin)
	require.NoError(t, err)
	require.Equal(t, string(xmlIn), string(xmlOut))
}

func TestPackUnpackFBRBWrappers(t *testing.T) {
	archive, err := PackFBRB([]fbrb.File{{Path: "a.wave", Data: []byte("x")}})
	require.NoError(t, err)

	out, err := UnpackFBRB(archive)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "a.wave", out[0].Path)
}
