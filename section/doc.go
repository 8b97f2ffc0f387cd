// Package section defines the fixed-size binary layout structures shared
// by the dbx and fbrb codecs: the dbx file header, the fbrb directory
// entry record, and the fbrb directory blob framing. All fields are
// big-endian, matching the wire formats both codecs read and write.
package section
