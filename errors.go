package binaryfuse

import "errors"

// Sentinel errors. Callers classify failures with errors.Is; AddAll also
// returns the matching Status so failures are machine-checkable without
// importing this package's error variables.
var (
	// ErrTooManyIterations is returned when peeling fails to converge
	// within Options.MaxRetries attempts.
	ErrTooManyIterations = errors.New("binaryfuse: too many peeling iterations")

	// ErrEmptyRange is returned when start > end.
	ErrEmptyRange = errors.New("binaryfuse: start > end")

	// ErrRangeOutOfBounds is returned when start or end falls outside
	// the provided key slice.
	ErrRangeOutOfBounds = errors.New("binaryfuse: start/end out of bounds")
)
