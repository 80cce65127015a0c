package binaryfuse

import "math"

// arity is fixed at 3: this package implements only the 3-wise binary
// fuse filter. Other arities are a non-goal.
const arity = 3

// maxSegmentLength caps segmentLength at 2^18, matching the reference
// construction.
const maxSegmentLength = 1 << 18

// segmentLength returns the tabulated segment length for n keys, rounded
// up to a power of two, before the maxSegmentLength cap is applied.
// Precondition: n >= 3 (newGeometry clamps smaller inputs before calling).
func segmentLength(n uint64) uint32 {
	return uint32(2) << int(math.Round(0.831*math.Log(float64(n))+0.75+0.5))
}

// sizeFactor returns the tabulated overprovisioning factor for n keys.
// Precondition: n >= 3 (newGeometry clamps smaller inputs before calling).
func sizeFactor(n uint64) float64 {
	return math.Max(1.125, 0.4+9.3/math.Log(float64(n)))
}

// geometry holds the derived layout parameters for a filter of n keys.
// It is computed once in New and never mutated afterwards.
type geometry struct {
	size               uint64
	segmentLength      uint32
	segmentLengthMask  uint32
	segmentCount       uint32
	segmentCountLength uint32
	arrayLength        uint32
}

// newGeometry implements the geometry computation of spec §4.1: the
// capacity/segment-count pair is computed once, the array length derived
// from it, then the segment count is renormalized against the rounded
// array length and the array length recomputed a second time.
func newGeometry(n uint64) geometry {
	// The tuning tables divide by log(n) and degenerate for n<3 (log(1)=0,
	// log(0)=-Inf). Per spec.md §9's open question on small/empty input,
	// geometry is sized as if n were at least 3; size still reports the
	// real n and AddAll/Contains behave correctly for n=0,1,2.
	sizingN := n
	if sizingN < 3 {
		sizingN = 3
	}

	segLen := segmentLength(sizingN)
	if segLen > maxSegmentLength {
		segLen = maxSegmentLength
	}
	segLenMask := segLen - 1

	factor := sizeFactor(sizingN)
	capacity := uint32(math.Round(float64(sizingN) * factor))

	segCount := (capacity+segLen-1)/segLen - (arity - 1)
	arrLen := (segCount + arity - 1) * segLen

	segCount = (arrLen + segLen - 1) / segLen
	if segCount <= arity-1 {
		segCount = 1
	} else {
		segCount -= arity - 1
	}
	arrLen = (segCount + arity - 1) * segLen

	return geometry{
		size:               n,
		segmentLength:      segLen,
		segmentLengthMask:  segLenMask,
		segmentCount:       segCount,
		segmentCountLength: segCount * segLen,
		arrayLength:        arrLen,
	}
}
