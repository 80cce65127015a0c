package binaryfuse

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestDeterministicAcrossStrategies verifies property P5: for a fixed
// key set, geometry and the final fingerprint table are bitwise
// identical regardless of which tallying strategy built them. The two
// strategies only reorder how hashes are folded into per-slot tallies;
// XOR and addition are commutative, so the final (count, xorSum) per
// slot — and therefore the peeling result and fingerprint table — do
// not depend on that order.
func TestDeterministicAcrossStrategies(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(101, 202))
	keys := randomDistinctKeys(rng, 5000)

	sorted, err := Populate[uint8](keys, Options{Strategy: StrategySorted})
	require.NoError(t, err)

	prefetch, err := Populate[uint8](keys, Options{Strategy: StrategyPrefetch})
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(sorted.geometry, prefetch.geometry))
	require.True(t, cmp.Equal(sorted.fingerprints, prefetch.fingerprints),
		"fingerprint tables must be byte-identical across strategies (P5)")
}
