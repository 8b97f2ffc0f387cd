package fbrb

import (
	"encoding/binary"
	"fmt"
	"path"
	"strings"

	"github.com/frankelstner/fbassets/compress"
	"github.com/frankelstner/fbassets/format"
	"github.com/frankelstner/fbassets/internal/options"
	"github.com/frankelstner/fbassets/internal/pool"
	"github.com/frankelstner/fbassets/restype"
	"github.com/frankelstner/fbassets/section"
)

// directoryGzipLevel is the fixed gzip level the directory blob is always
// compressed at, independent of Options.CompressionLevel (which only
// controls the payload stream), matching fbrb.py's hardcoded
// compresslevel=1 for the directory.
const directoryGzipLevel = 1

// payloadCodec returns the Codec Pack uses for the payload stream: the
// no-op codec when level <= 0 (payload stored raw, zipped flag cleared),
// otherwise a gzip codec at the requested level.
func payloadCodec(level int) (compress.Codec, error) {
	if level <= 0 {
		return compress.CreateCodec(format.CompressionNone, "payload")
	}

	return compress.NewGzipCodec(level), nil
}

// Pack serializes files into an fbrb archive. Files whose extension isn't
// in restype's closed table are silently skipped, matching the original
// packer's behavior.
func Pack(files []File, opts ...Option) ([]byte, error) {
	o := defaultOptions()
	if err := options.Apply(o, opts...); err != nil {
		return nil, fmt.Errorf("fbrb: pack options: %w", err)
	}

	strBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(strBuf)
	payloadBuf := pool.GetBlobSetBuffer()
	defer pool.PutBlobSetBuffer(payloadBuf)

	extOffsets := make(map[string]uint32)
	var entries []section.FBRBEntry
	var payloadOffset uint32

	for _, f := range files {
		ext := f.Ext
		if ext == "" {
			ext = strings.ToLower(strings.TrimPrefix(path.Ext(f.Path), "."))
		}
		typeName, ok := restype.ToType(ext)
		if !ok {
			continue
		}

		storedPath := storedArchivePath(f.Path, ext)

		pathOffset := uint32(strBuf.Len())
		strBuf.MustWrite([]byte(storedPath))
		strBuf.MustWrite([]byte{0})

		extOffset, ok := extOffsets[typeName]
		if !ok {
			extOffset = uint32(strBuf.Len())
			extOffsets[typeName] = extOffset
			strBuf.MustWrite([]byte(typeName))
			strBuf.MustWrite([]byte{0})
		}

		deleteFlag := section.FBRBFlagNonEmptyPayload
		if len(f.Data) == 0 {
			deleteFlag = section.FBRBFlagEmptyPayload
		}

		entries = append(entries, section.FBRBEntry{
			PathOffset:    pathOffset,
			DeleteFlag:    deleteFlag,
			PayloadOffset: payloadOffset,
			PayloadLen:    uint32(len(f.Data)),
			ExtOffset:     extOffset,
		})

		payloadBuf.MustWrite(f.Data)
		payloadOffset += uint32(len(f.Data))
	}

	codec, err := payloadCodec(o.CompressionLevel)
	if err != nil {
		return nil, fmt.Errorf("fbrb: payload codec: %w", err)
	}
	payloadBytes, err := codec.Compress(payloadBuf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("fbrb: payload compression: %w", err)
	}

	dir := section.FBRBDirectory{
		StringTable: strBuf.Bytes(),
		Entries:     entries,
		Zipped:      o.CompressionLevel > 0,
		PayloadLen:  payloadOffset,
	}
	dirBlob := dir.Append(nil)

	dirGzip := compress.NewGzipCodec(directoryGzipLevel)
	gzippedDir, err := dirGzip.Compress(dirBlob)
	if err != nil {
		return nil, fmt.Errorf("fbrb: directory compression: %w", err)
	}

	out := make([]byte, 0, 4+4+len(gzippedDir)+len(payloadBytes))
	out = append(out, section.FBRBMagic[:]...)
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(gzippedDir)))
	out = append(out, lenBuf[:]...)
	out = append(out, gzippedDir...)
	out = append(out, payloadBytes...)

	return out, nil
}

// storedArchivePath computes the archive-relative path a source file is
// stored under: dbxdeleted files drop their ".dbxdeleted" suffix down to
// ".dbx", dbx/bin/dbmanifest keep their on-disk name, everything else is
// rewritten to end in ".res".
func storedArchivePath(relPath, ext string) string {
	dir, base := path.Split(relPath)

	switch ext {
	case "dbxdeleted":
		return dir + strings.TrimSuffix(base, "deleted")
	case "dbx", "bin", "dbmanifest":
		return dir + base
	default:
		raw := strings.TrimSuffix(base, path.Ext(base))
		return dir + raw + ".res"
	}
}
