package binaryfuse

import "runtime"

// hypergraph holds the per-slot aggregate state used during peeling
// (spec §3 "Transient build-time entities", §4.3).
//
// The count for slot i is packed into the upper 6 bits of t2count[i]
// as a running total in increments of 4, with the low 2 bits instead
// tracking (via XOR) which of the three hash positions last touched the
// slot. This mirrors the teacher's PopulateBinaryFuse8 packed
// representation: count lives in count>>2, and count&3 recovers the
// pivot hash-position once count has been decremented down to 1.
type hypergraph struct {
	t2count []uint8
	t2hash  []uint64
}

func newHypergraph(arrayLength uint32) *hypergraph {
	return &hypergraph{
		t2count: make([]uint8, arrayLength),
		t2hash:  make([]uint64, arrayLength),
	}
}

func (hg *hypergraph) reset() {
	for i := range hg.t2count {
		hg.t2count[i] = 0
		hg.t2hash[i] = 0
	}
}

// mod3 reduces a small integer (1..4) into {0,1,2}, matching the
// teacher's helper used to rotate which hash-position index a slot was
// last touched by.
func mod3(x uint8) uint8 {
	if x > 2 {
		x -= 3
	}
	return x
}

// tallyOne folds one key's hash into the three slots it touches.
func (hg *hypergraph) tallyOne(hash uint64, g geometry) {
	s0, s1, s2 := slots(hash, g)
	hg.t2count[s0] += 4
	hg.t2hash[s0] ^= hash
	hg.t2count[s1] += 4
	hg.t2count[s1] ^= 1
	hg.t2hash[s1] ^= hash
	hg.t2count[s2] += 4
	hg.t2count[s2] ^= 2
	hg.t2hash[s2] ^= hash
}

// tallyPrefetch implements spec §4.3(a): walk keys[start:end] touching
// the hash of keys[i+16] before processing keys[i], to give the runtime
// and CPU cache a head start loading the slots that will be written
// next. Go has no portable cache-prefetch intrinsic, so "prefetch" here
// is simply computing the lookahead key's slots and hash early; this is
// advisory only; correctness does not depend on it (spec §9).
func tallyPrefetch(hg *hypergraph, hasher Hasher, g geometry, keys []uint64, start, end int) {
	const lookahead = 16
	i := start
	for ; i < end-lookahead; i++ {
		aheadHash := hasher.Hash(keys[i+lookahead])
		s0, s1, s2 := slots(aheadHash, g)
		touch := hg.t2hash[s0] ^ hg.t2hash[s1] ^ hg.t2hash[s2]
		runtime.KeepAlive(touch)

		hash := hasher.Hash(keys[i])
		hg.tallyOne(hash, g)
	}
	for ; i < end; i++ {
		hg.tallyOne(hasher.Hash(keys[i]), g)
	}
}

// tallySorted implements spec §4.3(b): hash every key, counting-sort the
// hashes by their top blockBits bits (blockBits = ceil(log2(segmentCount)),
// and at least 1), then tally in sorted order for better slot locality.
// The sorted hashes are written into sortedHashes, a caller-owned buffer
// of length end-start that AddAll reuses across attempts.
func tallySorted(hg *hypergraph, hasher Hasher, g geometry, keys []uint64, start, end int, sortedHashes []uint64) {
	blockBits := 1
	for (1 << blockBits) < int(g.segmentCount) {
		blockBits++
	}

	size := end - start
	startPos := make([]int, 1<<blockBits)
	for i := range startPos {
		startPos[i] = (i * size) >> blockBits
	}

	// Open-addressing counting sort, matching the teacher's
	// PopulateBinaryFuse8: a slot in startPos may already be occupied by
	// a hash landing in the same block, in which case the next block is
	// probed in wraparound order. occupied[size] is a permanently set
	// sentinel (the teacher's reverseOrder[size] = 1), so a block whose
	// cursor has reached the end of the buffer is probed past instead of
	// being indexed out of range.
	occupied := make([]bool, size+1)
	occupied[size] = true
	blockMask := (1 << blockBits) - 1
	for _, key := range keys[start:end] {
		hash := hasher.Hash(key)
		block := int(hash >> (64 - uint(blockBits)))
		for occupied[startPos[block]] {
			block++
			block &= blockMask
		}
		sortedHashes[startPos[block]] = hash
		occupied[startPos[block]] = true
		startPos[block]++
	}

	for i := 0; i < size; i++ {
		hg.tallyOne(sortedHashes[i], g)
	}
}
