// Package encoding provides the low-level byte-level primitives shared by
// the dbx and fbrb codecs: unsigned LEB128 varints, canonical float text
// formatting, and the numeric classifier dbx uses to disambiguate int32
// from float32 vector slots.
//
// # Overview
//
// None of these primitives understand dbx or fbrb structure; they operate
// on plain byte slices and values. The dbx package layers field-name-aware
// dispatch (HALVES, DOUBLES, HASHES, ...) on top of the classifier here.
package encoding
