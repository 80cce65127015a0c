package binaryfuse

import "fmt"

// AddAll builds the filter from keys[start:end] (spec §4.3-§4.6). It is
// synchronous, single-threaded, and O(n) expected work. On success it
// returns (StatusOK, nil) and the fingerprint table is populated; on
// retry-budget exhaustion it returns (StatusNotEnoughSpace,
// ErrTooManyIterations-wrapped error) and the fingerprint table is left
// zeroed (spec §4.5, §7).
//
// Duplicate keys are the caller's responsibility (spec §7): AddAll
// treats keys as a set and does not detect duplicates.
func (f *Filter[F]) AddAll(keys []uint64, start, end int) (Status, error) {
	if start > end {
		return StatusNotSupported, fmt.Errorf("start=%d end=%d: %w", start, end, ErrEmptyRange)
	}
	if start < 0 || end > len(keys) {
		return StatusNotSupported, fmt.Errorf("start=%d end=%d len=%d: %w", start, end, len(keys), ErrRangeOutOfBounds)
	}

	size := end - start
	g := f.geometry
	hg := newHypergraph(g.arrayLength)

	var sortedScratch []uint64
	if f.opts.Strategy == StrategySorted {
		sortedScratch = make([]uint64, size)
	}

	for attempt := 1; ; attempt++ {
		hg.reset()

		switch f.opts.Strategy {
		case StrategyPrefetch:
			tallyPrefetch(hg, f.opts.Hasher, g, keys, start, end)
		default:
			tallySorted(hg, f.opts.Hasher, g, keys, start, end, sortedScratch)
		}

		result := peel(hg, g, size)
		if result.n == size {
			assignFingerprints[F](f.fingerprints, result, g)
			return StatusOK, nil
		}

		if attempt >= f.opts.MaxRetries {
			for i := range f.fingerprints {
				f.fingerprints[i] = 0
			}
			return StatusNotEnoughSpace, fmt.Errorf("attempt %d/%d, n=%d: %w", attempt, f.opts.MaxRetries, size, ErrTooManyIterations)
		}

		f.opts.Hasher.Reseed()
	}
}
