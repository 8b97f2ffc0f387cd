package fbrb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/frankelstner/fbassets/compress"
	"github.com/frankelstner/fbassets/format"
	"github.com/frankelstner/fbassets/restype"
	"github.com/frankelstner/fbassets/section"
)

// Unpack parses an fbrb archive into its member files. It returns (nil, nil)
// if data doesn't begin with the fbrb magic.
func Unpack(data []byte) ([]File, error) {
	if len(data) < 4 || !bytes.Equal(data[:4], section.FBRBMagic[:]) {
		return nil, nil
	}
	data = data[4:]

	if len(data) < 4 {
		return nil, fmt.Errorf("fbrb: truncated directory length")
	}
	dirLen := binary.BigEndian.Uint32(data[:4])
	data = data[4:]

	if uint64(len(data)) < uint64(dirLen) {
		return nil, fmt.Errorf("fbrb: truncated directory")
	}
	gzippedDir := data[:dirLen]
	payloadStream := data[dirLen:]

	gz, err := compress.GetCodec(format.CompressionGzip)
	if err != nil {
		return nil, fmt.Errorf("fbrb: %w", err)
	}
	dirBlob, err := gz.Decompress(gzippedDir)
	if err != nil {
		return nil, fmt.Errorf("fbrb: directory: %w", err)
	}

	dir, err := section.ReadFBRBDirectory(dirBlob)
	if err != nil {
		return nil, fmt.Errorf("fbrb: %w", err)
	}

	payloadType := format.CompressionNone
	if dir.Zipped {
		payloadType = format.CompressionGzip
	}
	payloadDecoder, err := compress.GetCodec(payloadType)
	if err != nil {
		return nil, fmt.Errorf("fbrb: %w", err)
	}
	payload, err := payloadDecoder.Decompress(payloadStream)
	if err != nil {
		return nil, fmt.Errorf("fbrb: payload: %w", err)
	}
	if uint32(len(payload)) < dir.PayloadLen {
		return nil, fmt.Errorf("fbrb: payload shorter than declared length")
	}

	files := make([]File, 0, len(dir.Entries))
	for i, e := range dir.Entries {
		storedPath, err := grabString(dir.StringTable, e.PathOffset)
		if err != nil {
			return nil, fmt.Errorf("fbrb: entry %d: path: %w", i, err)
		}
		typeName, err := grabString(dir.StringTable, e.ExtOffset)
		if err != nil {
			return nil, fmt.Errorf("fbrb: entry %d: type name: %w", i, err)
		}

		if uint64(e.PayloadOffset)+uint64(e.PayloadLen) > uint64(len(payload)) {
			return nil, fmt.Errorf("fbrb: entry %d: payload range out of bounds", i)
		}
		content := payload[e.PayloadOffset : e.PayloadOffset+e.PayloadLen]

		ext := restype.ToExtension(typeName, storedPath)
		finalPath := replaceExt(storedPath, ext)

		files = append(files, File{
			Path: finalPath,
			Ext:  ext,
			Data: content,
		})
	}

	return files, nil
}

// grabString reads a null-terminated string from table starting at offset.
func grabString(table []byte, offset uint32) (string, error) {
	if uint64(offset) > uint64(len(table)) {
		return "", fmt.Errorf("offset %d out of bounds", offset)
	}
	end := bytes.IndexByte(table[offset:], 0)
	if end < 0 {
		return "", fmt.Errorf("offset %d: unterminated string", offset)
	}
	return string(table[offset : offset+uint32(end)]), nil
}

// replaceExt swaps storedPath's own extension (if any) for ext.
func replaceExt(storedPath, ext string) string {
	if idx := strings.LastIndexByte(storedPath, '.'); idx >= 0 {
		if slash := strings.LastIndexByte(storedPath, '/'); slash < idx {
			storedPath = storedPath[:idx]
		}
	}
	if ext == "" {
		return storedPath
	}
	return storedPath + "." + ext
}
