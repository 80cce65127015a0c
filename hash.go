package binaryfuse

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
)

// Hasher is the pluggable hash family contract of spec §4.8: a
// deterministic 64-bit mix for a fixed seed, re-seedable on retry.
// Filter.AddAll calls Reseed between peeling attempts; it never
// constructs a new Hasher.
type Hasher interface {
	Hash(key uint64) uint64
	Reseed()
}

// splitmix64 advances the given state and returns the next pseudorandom
// value. This is the seed stream the teacher uses to generate fresh
// hasher seeds between retries.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// mix64 is the murmur3 finalizer, used to turn key+seed into a
// well-distributed 64-bit hash.
func mix64(key uint64) uint64 {
	key = (key ^ (key >> 33)) * 0xff51afd7ed558ccd
	key = (key ^ (key >> 33)) * 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

// mixHasher is the default Hasher: splitmix64-seeded, murmur3-finalized.
// It is the Go restatement of the teacher's mixsplit/splitmix64 pair.
type mixHasher struct {
	seed    uint64
	counter uint64
}

// NewMixHasher constructs the default Hasher explicitly, for callers who
// want to name it rather than rely on Options' zero-value default.
func NewMixHasher() Hasher { return newMixHasher() }

func newMixHasher() *mixHasher {
	h := &mixHasher{counter: 1}
	h.seed = splitmix64(&h.counter)
	return h
}

func (h *mixHasher) Hash(key uint64) uint64 { return mix64(key + h.seed) }
func (h *mixHasher) Reseed()                { h.seed = splitmix64(&h.counter) }

// xxhashHasher hashes key||seed with xxhash/v2. xxhash/v2 has no seeded
// constructor, so the seed is folded into the 16 input bytes instead.
type xxhashHasher struct {
	seed    uint64
	counter uint64
}

// NewXXHashHasher constructs a Hasher backed by xxhash/v2.
func NewXXHashHasher() Hasher { return newXXHashHasher() }

func newXXHashHasher() *xxhashHasher {
	h := &xxhashHasher{counter: 1}
	h.seed = splitmix64(&h.counter)
	return h
}

func (h *xxhashHasher) Hash(key uint64) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], key)
	binary.LittleEndian.PutUint64(buf[8:16], h.seed)
	return xxhash.Sum64(buf[:])
}

func (h *xxhashHasher) Reseed() { h.seed = splitmix64(&h.counter) }

// siphashHasher hashes key with SipHash keyed by seed. SipHash's keyed
// construction is the most direct fit for "hash family with a seed":
// the seed is one of the two 64-bit key halves.
type siphashHasher struct {
	seed    uint64
	counter uint64
}

// NewSipHashHasher constructs a Hasher backed by SipHash, keyed by seed.
func NewSipHashHasher() Hasher { return newSipHashHasher() }

func newSipHashHasher() *siphashHasher {
	h := &siphashHasher{counter: 1}
	h.seed = splitmix64(&h.counter)
	return h
}

func (h *siphashHasher) Hash(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return siphash.Hash(h.seed, 0, buf[:])
}

func (h *siphashHasher) Reseed() { h.seed = splitmix64(&h.counter) }
