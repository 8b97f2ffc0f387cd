// Package restype implements the closed, fixed mapping between on-disk
// file extensions and the canonical resource-type names an fbrb archive
// stores in its string table.
//
// The table is not configurable: it was recovered in full from the
// original packing tool and is reproduced here verbatim, extension by
// extension.
package restype
