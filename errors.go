package rdtsc

import "errors"

// Sentinel errors returned by the measurement helpers.
// Read itself never fails.
var (
	// ErrInvalidRounds is returned when Overhead is asked for fewer than one
	// measurement round.
	ErrInvalidRounds = errors.New("rdtsc: rounds must be at least 1")

	// ErrInvalidIterations is returned when Measure is asked for fewer than
	// one iteration.
	ErrInvalidIterations = errors.New("rdtsc: iterations must be at least 1")

	// ErrNilFunc is returned when Measure is given nothing to run.
	ErrNilFunc = errors.New("rdtsc: nil function")
)
