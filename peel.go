package binaryfuse

// peelResult holds the peeled stack in peel order (index 0 = first
// peeled, i.e. last to be assigned a fingerprint). hash[i] is the key's
// hash, pivot[i] is the slot position (0,1,2) that was free of other
// keys when it was peeled (spec §4.4, §4.6).
type peelResult struct {
	hash  []uint64
	pivot []uint8
	n     int // number of entries actually peeled
}

// peel runs the worklist peeling algorithm of spec §4.4 against hg,
// which must already hold the tallies for every key. It returns the
// peeled stack; result.n < size indicates peeling failed to consume
// every key, i.e. AddAll must reseed and retry.
//
// The §4.4.1 eager SCAN_COUNT pre-pass is not implemented: it is present
// only in the original C++ header's unpacked (t2, t2count) struct
// representation, and absent from every one of the Go teacher's four
// Populate* variants, including the one this package's packed
// (count<<2 | position) representation is ported from. Per spec §9's
// own framing, the two are semantically equivalent either way; omitting
// it also avoids a separate self-decrement rule the packed
// representation would otherwise need purely for the pre-pass.
func peel(hg *hypergraph, g geometry, size int) peelResult {
	capacity := len(hg.t2count)
	result := peelResult{
		hash:  make([]uint64, size),
		pivot: make([]uint8, size),
	}

	alone := make([]uint32, 0, capacity)
	for idx := uint32(0); idx < uint32(capacity); idx++ {
		if hg.t2count[idx]>>2 == 1 {
			alone = append(alone, idx)
		}
	}

	for len(alone) > 0 {
		idx := alone[len(alone)-1]
		alone = alone[:len(alone)-1]
		if hg.t2count[idx]>>2 != 1 {
			continue // stale entry
		}

		hash := hg.t2hash[idx]
		found := hg.t2count[idx] & 3
		result.hash[result.n] = hash
		result.pivot[result.n] = found
		result.n++

		var h012 [3]uint32
		h012[0], h012[1], h012[2] = slots(hash, g)

		for _, rel := range [2]uint8{1, 2} {
			other := h012[mod3(found+rel)]
			if hg.t2count[other]>>2 == 2 {
				alone = append(alone, other)
			}
			hg.t2count[other] -= 4
			hg.t2count[other] ^= mod3(found + rel)
			hg.t2hash[other] ^= hash
		}
	}

	return result
}
