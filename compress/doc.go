// Package compress provides the compression codecs used by the fbrb archive
// format.
//
// # Overview
//
// An FBRB archive gzips its directory section unconditionally and gzips its
// payload section only when the archive's zipped flag is set. Both cases
// are modeled by the same two-algorithm set:
//
//   - None: the payload passes through unchanged (format.CompressionNone)
//   - Gzip: github.com/klauspost/compress/gzip, a drop-in faster
//     reimplementation of the standard library's gzip (format.CompressionGzip)
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Selecting a codec
//
//	codec, err := compress.CreateCodec(format.CompressionGzip, "payload")
//	compressed, err := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// # Thread Safety
//
// NoOpCompressor is stateless and safe for concurrent use. GzipCodec holds
// no mutable state between calls and is likewise safe for concurrent use,
// though each Compress/Decompress call allocates its own reader/writer.
package compress
