package binaryfuse

import "math/bits"

// slotSubHashBits is the width of the low-order sub-hash used to perturb
// slots 1 and 2 within their segment (spec §4.2): 36 = 2*18.
const slotSubHashBits = 36

// slots computes the three slot indices for hash h under the given
// geometry. It is the single implementation shared by AddAll and
// Contains, so build-time and query-time addressing can never drift
// apart (spec §4.2, Invariant 3, property P3).
func slots(h uint64, g geometry) (s0, s1, s2 uint32) {
	hi, _ := bits.Mul64(h, uint64(g.segmentCountLength))
	s0 = uint32(hi)
	s1 = s0 + g.segmentLength
	s2 = s1 + g.segmentLength

	hh := h & ((1 << slotSubHashBits) - 1)
	// hh is 36 bits wide, so hh>>36 is always 0: slot 0 receives no
	// perturbation. Kept explicit rather than simplified away, since it
	// is the branch-free form that generalizes to other arities.
	s0 ^= uint32((hh >> 36) & uint64(g.segmentLengthMask))
	s1 ^= uint32((hh >> 18) & uint64(g.segmentLengthMask))
	s2 ^= uint32(hh & uint64(g.segmentLengthMask))
	return s0, s1, s2
}

// fingerprintOf truncates a 64-bit hash to the fingerprint width F.
func fingerprintOf[F FingerprintWidth](h uint64) F {
	return F(h)
}
