package binaryfuse

// assignFingerprints walks the peeled stack in reverse (spec §4.6): the
// last key peeled is the first one assigned, since at assignment time
// its pivot slot must not yet hold contributions from any other key.
func assignFingerprints[F FingerprintWidth](fingerprints []F, result peelResult, g geometry) {
	for i := result.n - 1; i >= 0; i-- {
		hash := result.hash[i]
		found := result.pivot[i]

		var h012 [3]uint32
		h012[0], h012[1], h012[2] = slots(hash, g)

		xor := fingerprintOf[F](hash)
		xor ^= fingerprints[h012[mod3(found+1)]]
		xor ^= fingerprints[h012[mod3(found+2)]]
		fingerprints[h012[found]] = xor
	}
}
