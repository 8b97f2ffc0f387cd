package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/frankelstner/fbassets/internal/pool"
)

// DefaultGzipLevel is the compression level of the gzip codec returned by
// CreateCodec and GetCodec: the gzip library's default level. fbrb.Pack
// does not use it; it sets its own directory and payload levels.
const DefaultGzipLevel = gzip.DefaultCompression

// GzipCodec compresses and decompresses data using gzip, via
// github.com/klauspost/compress/gzip.
//
// Both the fbrb directory section (always gzipped) and the fbrb payload
// section (gzipped only when the archive's zipped flag is set) use a
// GzipCodec.
type GzipCodec struct {
	level int
}

var _ Codec = (*GzipCodec)(nil)

// NewGzipCodec creates a GzipCodec with the given compression level
// (gzip.NoCompression..gzip.BestCompression, or gzip.DefaultCompression).
func NewGzipCodec(level int) *GzipCodec {
	return &GzipCodec{level: level}
}

// Compress gzips data at the codec's configured level.
func (c *GzipCodec) Compress(data []byte) ([]byte, error) {
	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	w, err := gzip.NewWriterLevel(buf, c.level)
	if err != nil {
		return nil, fmt.Errorf("gzip: new writer: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("gzip: write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzip: close: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// Decompress gunzips data previously produced by Compress.
func (c *GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: new reader: %w", err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gzip: read: %w", err)
	}

	return out, nil
}
