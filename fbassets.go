// Package fbassets provides convenient top-level wrappers around the dbx
// and fbrb packages, covering the most common use cases.
//
// # Basic Usage
//
//	xmlData, err := fbassets.DecodeDBX(fileBytes)
//	binData, err := fbassets.EncodeDBX(xmlData)
//
//	files, err := fbassets.UnpackFBRB(archiveBytes)
//	archiveBytes, err := fbassets.PackFBRB(files, fbrb.WithCompressionLevel(6))
//
// For advanced usage and fine-grained control, use the dbx and fbrb
// packages directly.
package fbassets

import (
	"github.com/frankelstner/fbassets/dbx"
	"github.com/frankelstner/fbassets/fbrb"
)

// DecodeDBX converts dbx binary data to its XML rendering. It returns
// (nil, nil) if data doesn't carry the dbx magic.
func DecodeDBX(data []byte) ([]byte, error) {
	return dbx.Decode(data)
}

// EncodeDBX converts dbx XML text back to binary. It returns (nil, nil)
// if xmlData doesn't carry the expected XML prolog.
func EncodeDBX(xmlData []byte) ([]byte, error) {
	return dbx.Encode(xmlData)
}

// UnpackFBRB parses an fbrb archive into its member files. It returns
// (nil, nil) if data doesn't carry the fbrb magic.
func UnpackFBRB(data []byte) ([]fbrb.File, error) {
	return fbrb.Unpack(data)
}

// PackFBRB serializes files into an fbrb archive.
func PackFBRB(files []fbrb.File, opts ...fbrb.Option) ([]byte, error) {
	return fbrb.Pack(files, opts...)
}
