package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
//
// Used as the bucket key of the dbx string dictionary, which still
// compares the actual strings within a bucket to guard against
// collisions.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
