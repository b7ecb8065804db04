// Package conv provides safe integer conversion helpers for the automaton
// builder.
//
// State ids are counted as plain ints while the trie is being built (so they
// index Go slices directly) but are packed into the upper 32 bits of a
// transition word once the automaton is finalized. These helpers perform the
// narrowing bounds check in one place and panic on overflow, since an
// automaton with more than 2^32 states indicates a caller error (an
// absurdly large needle set) rather than a condition callers can recover
// from.
package conv

import "math"

// IntToUint32 safely converts an int to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// Use uint for comparison to avoid overflow on 32-bit platforms
	// where int cannot represent math.MaxUint32.
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("acmatch: state count overflows uint32")
	}
	return uint32(n)
}
