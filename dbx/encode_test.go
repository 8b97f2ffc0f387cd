package dbx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLineContainerOpen(t *testing.T) {
	d := newDict()
	out, err := readLine("<root>", d)
	require.NoError(t, err)
	require.Equal(t, byte(0xA0), out[len(out)-2])
	require.Equal(t, byte(0x00), out[len(out)-1])
}

func TestReadLineContainerClose(t *testing.T) {
	d := newDict()
	out, err := readLine("</root>", d)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, out)
}

func TestReadLineSelfClosing(t *testing.T) {
	d := newDict()
	out, err := readLine("<Leaf />", d)
	require.NoError(t, err)
	require.Equal(t, byte(0x20), out[len(out)-2])
	require.Equal(t, byte(0x00), out[len(out)-1])
}

func TestReadLineBoolean(t *testing.T) {
	d := newDict()
	out, err := readLine("<Flag name=\"Other\">true</Flag>", d)
	require.NoError(t, err)
	require.Equal(t, byte(0x61), out[1])
	require.Equal(t, byte(0x01), out[len(out)-1])
}

func TestReadLineEmptyNumsField(t *testing.T) {
	d := newDict()
	out, err := readLine("<V name=\"LeftCurve\"></V>", d)
	require.NoError(t, err)
	require.Equal(t, byte(0x71), out[1])
	require.Equal(t, byte(0x00), out[len(out)-2])
	require.Equal(t, byte(0x04), out[len(out)-1])
}

func TestReadLineHalvesInvalid(t *testing.T) {
	d := newDict()
	_, err := readLine("<V name=\"SourceId\">-1</V>", d)
	require.Error(t, err)
}

func TestDictInternReusesIndex(t *testing.T) {
	d := newDict()
	a := d.intern("Foo")
	b := d.intern("Foo")
	require.Equal(t, a, b)

	c := d.intern("Bar")
	require.NotEqual(t, a, c)
	require.Equal(t, []string{"", "Foo", "Bar"}, d.strings())
}
