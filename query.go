package binaryfuse

// Contains reports whether key was previously added. It never produces
// a false negative for a key that was part of the set AddAll succeeded
// on; for keys outside the set it returns StatusNotFound with
// probability 1-2^-bits(F) (spec §4.7, §8 P1/P2).
func (f *Filter[F]) Contains(key uint64) Status {
	hash := f.opts.Hasher.Hash(key)
	fp := fingerprintOf[F](hash)

	s0, s1, s2 := slots(hash, f.geometry)
	fp ^= f.fingerprints[s0] ^ f.fingerprints[s1] ^ f.fingerprints[s2]

	if fp == 0 {
		return StatusOK
	}
	return StatusNotFound
}
