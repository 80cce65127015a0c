package binaryfuse

import "fmt"

// Info returns a short human-readable summary, mirroring the teacher's
// Info() method.
func (f *Filter[F]) Info() string {
	return fmt.Sprintf(
		"Filter: keys=%d, arrayLength=%d, segmentLength=%d, segmentCount=%d, sizeInBytes=%d",
		f.geometry.size, f.geometry.arrayLength, f.geometry.segmentLength,
		f.geometry.segmentCount, f.SizeInBytes(),
	)
}
