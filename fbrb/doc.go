// Package fbrb packs and unpacks FbRB resource archives: a gzip-compressed
// directory of path/extension/offset/length records followed by a payload
// stream that is itself gzip-compressed only when the archive's zipped
// flag is set.
//
// # Basic Usage
//
//	files, err := fbrb.Unpack(archiveBytes)
//	archiveBytes, err := fbrb.Pack(files, fbrb.WithCompressionLevel(6))
//
// Unpack returns (nil, nil) when the input doesn't start with the fbrb
// magic. Pack silently skips any File whose extension isn't in restype's
// closed extension table, matching the original packer's behavior.
//
// # Directory walking and I/O
//
// Building the []File slice from a source directory, and writing an
// unpacked []File back to disk, are left to the caller (cmd/fbassets):
// this package only converts between archive bytes and an in-memory file
// list.
package fbrb
