package fbrb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	files := []File{
		{Path: "meshes/rock.wave", Data: []byte("audio bytes")},
		{Path: "entities/tank.dbx", Data: []byte("<xml/>")},
		{Path: "entities/old.dbxdeleted", Data: nil},
	}

	archive, err := Pack(files)
	require.NoError(t, err)
	require.NotNil(t, archive)

	out, err := Unpack(archive)
	require.NoError(t, err)
	require.Len(t, out, 3)

	require.Equal(t, "meshes/rock.wave", out[0].Path)
	require.Equal(t, []byte("audio bytes"), out[0].Data)

	require.Equal(t, "entities/tank.dbx", out[1].Path)
	require.Equal(t, []byte("<xml/>"), out[1].Data)

	require.Equal(t, "entities/old.dbxdeleted", out[2].Path)
	require.Empty(t, out[2].Data)
}

func TestPackSkipsUnknownExtension(t *testing.T) {
	files := []File{
		{Path: "notes/readme.txt", Data: []byte("hello")},
	}

	archive, err := Pack(files)
	require.NoError(t, err)

	out, err := Unpack(archive)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestPackUncompressedPayload(t *testing.T) {
	files := []File{
		{Path: "a.wave", Data: []byte("payload")},
	}

	archive, err := Pack(files, WithCompressionLevel(0))
	require.NoError(t, err)

	out, err := Unpack(archive)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, []byte("payload"), out[0].Data)
}

func TestUnpackWrongMagic(t *testing.T) {
	out, err := Unpack([]byte("not an fbrb archive"))
	require.NoError(t, err)
	require.Nil(t, out)
}

func TestUnpackDeletedResourceExtension(t *testing.T) {
	files := []File{
		{Path: "x/old.resdeleted", Data: nil},
	}

	archive, err := Pack(files)
	require.NoError(t, err)

	out, err := Unpack(archive)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "x/old.resdeleted", out[0].Path)
}
