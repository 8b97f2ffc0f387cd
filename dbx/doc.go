// Package dbx converts between binary dbx property-tree files and their
// XML textual form.
//
// # Overview
//
// A dbx file is a tree of tagged elements with interned tag/attribute
// names and one of four value kinds per element: a nested container, a
// string, a numeric vector, or a single boolean/byte value. Decode
// renders this tree as XML; Encode parses that same XML back into bytes
// identical to the original (net of the numeric-vector ambiguity
// invariants documented on ClassifySlot and DetectStride4 in the
// encoding package).
//
// # Field-name-driven numeric dispatch
//
// A handful of attribute names change how their sibling numeric content
// is written and read: see HALVES, DOUBLES, HASHES, TYPE2 and EMPTYNUMS.
// These are dbx vocabulary, not a general encoding concern, which is why
// they live here rather than in the encoding package.
//
// # Basic Usage
//
//	xmlBytes, err := dbx.Decode(dbxBytes)
//	dbxBytes, err := dbx.Encode(xmlBytes)
//
// Decode returns (nil, nil) when the input doesn't start with the dbx
// magic; Encode returns (nil, nil) when the input doesn't start with the
// expected XML prolog. Both mirror the original tool's policy of silently
// skipping files of the wrong kind instead of erroring.
package dbx
