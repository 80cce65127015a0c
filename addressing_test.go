package binaryfuse

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// simplifiedQuerySlots reimplements spec §4.7's query-path simplification
// independently of slots(), so TestAddressingEquivalence (P3) is a real
// check and not a tautology against shared code.
func simplifiedQuerySlots(h uint64, g geometry) (s0, s1, s2 uint32) {
	hi, _ := bits.Mul64(h, uint64(g.segmentCountLength))
	s0 = uint32(hi)
	s1 = s0 + g.segmentLength
	s2 = s1 + g.segmentLength
	s1 ^= uint32(h>>18) & g.segmentLengthMask
	s2 ^= uint32(h) & g.segmentLengthMask
	return s0, s1, s2
}

func TestAddressingEquivalence(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))

	for _, n := range []uint64{1, 3, 1000, 1_000_000} {
		g := newGeometry(n)
		for i := 0; i < 1000; i++ {
			h := rng.Uint64()
			a0, a1, a2 := slots(h, g)
			b0, b1, b2 := simplifiedQuerySlots(h, g)
			require.Equal(t, [3]uint32{a0, a1, a2}, [3]uint32{b0, b1, b2}, "h=%d n=%d", h, n)
		}
	}
}

func TestAddressingSlotsLieInThreeConsecutiveSegments(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(7, 9))
	g := newGeometry(10_000)

	for i := 0; i < 1000; i++ {
		h := rng.Uint64()
		s0, s1, s2 := slots(h, g)

		// s0 carries no perturbation, so its own segment is the anchor
		// (spec Invariant 3): s_i in [i*segmentLength+base, (i+1)*segmentLength+base).
		home := s0 - (s0 & g.segmentLengthMask)
		require.GreaterOrEqual(t, s0, home)
		require.Less(t, s0, home+g.segmentLength)
		require.GreaterOrEqual(t, s1, home+g.segmentLength)
		require.Less(t, s1, home+2*g.segmentLength)
		require.GreaterOrEqual(t, s2, home+2*g.segmentLength)
		require.Less(t, s2, home+3*g.segmentLength)

		require.True(t, s0 != s1 && s1 != s2 && s0 != s2, "slots must be pairwise distinct")
	}
}
