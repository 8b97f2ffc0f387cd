package encoding

import (
	"strconv"
	"strings"
)

// FormatFloat renders f in the canonical decimal text form dbx attribute
// values use: the shortest round-trip representation, with three textual
// touch-ups carried from the original tool's formatter:
//
//   - a leading "-." is rewritten to "-0."
//   - a leading "." is rewritten to "0."
//   - a result with neither "." nor an exponent gets a trailing ".0"
//
// so that "1" becomes "1.0" and both read back as the same float64.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)

	switch {
	case strings.HasPrefix(s, "-."):
		s = "-0." + s[2:]
	case strings.HasPrefix(s, "."):
		s = "0." + s[1:]
	}

	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}

	return s
}

// ReprFloat64 renders f using the shortest round-trip representation with
// no further touch-ups, matching the original tool's plain repr() of a
// 64-bit DOUBLES-tagged vector slot.
func ReprFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
