package tsp

import "math/bits"

// subsetMask is a typed handle onto the bitmask representation Held–Karp
// uses to encode vertex subsets. The zero value is invalid; always obtain
// one through newSubsetMask, whose constructor refuses any n at or beyond
// the machine word width rather than silently overflowing into undefined
// shift behavior.
type subsetMask struct {
	n int
}

// newSubsetMask validates that n vertices fit in a native int's bit width
// and returns the typed mask-space descriptor for that n.
func newSubsetMask(n int) (subsetMask, error) {
	if n < 0 || n >= bits.UintSize {
		return subsetMask{}, ErrSizeTooLarge
	}

	return subsetMask{n: n}, nil
}

// Full returns the mask with all n bits set (the "every vertex visited" subset).
func (s subsetMask) Full() int { return (1 << uint(s.n)) - 1 }

// Total returns 2^n, the number of distinct subsets of an n-vertex ground set.
func (s subsetMask) Total() int { return 1 << uint(s.n) }

// PopCount returns the number of vertices contained in mask.
func (s subsetMask) PopCount(mask int) int { return bits.OnesCount(uint(mask)) }
