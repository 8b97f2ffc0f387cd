package dbx

import "github.com/frankelstner/fbassets/internal/hash"

// dict is an ordered, insertion-order string dictionary: the encoder
// interns every tag name, attribute name, attribute value and string
// content through it, and its final insertion order becomes the dbx
// string pool. Index 0 is always the reserved empty string.
//
// Lookups are keyed by an xxHash64 of the candidate string so repeated
// interning of a large tag vocabulary stays O(1) rather than O(n); the
// hash buckets still compare the actual string to guard against
// collisions.
type dict struct {
	order  []string
	byHash map[uint64][]int
}

func newDict() *dict {
	d := &dict{byHash: make(map[uint64][]int)}
	d.intern("")

	return d
}

// intern returns s's index in the pool, adding it if not already present.
func (d *dict) intern(s string) uint32 {
	h := hash.ID(s)
	for _, idx := range d.byHash[h] {
		if d.order[idx] == s {
			return uint32(idx)
		}
	}

	idx := len(d.order)
	d.order = append(d.order, s)
	d.byHash[h] = append(d.byHash[h], idx)

	return uint32(idx)
}

// strings returns the pool in insertion order.
func (d *dict) strings() []string {
	return d.order
}
