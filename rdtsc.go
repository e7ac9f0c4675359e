// Package rdtsc reads the CPU's hardware cycle counter.
//
// Read returns the raw counter: RDTSC on amd64 and 386, CNTVCT_EL0 on arm64.
// The path is fixed when the package is built; builds for other
// architectures fail. On amd64 and 386 the purego build tag swaps the
// assembly for the Go runtime's own, fenced, RDTSC read; arm64 has no purego
// build.
//
// Counts are not converted to time. The counter may or may not tick at a
// constant rate, and counters on different CPUs may disagree; neither is
// checked. Pin the goroutine to one CPU when comparing reads.
package rdtsc

import "github.com/cwbudde/rdtsc/internal/cycles"

// CycleCount is a raw reading of the cycle counter.
type CycleCount uint64

// Read returns the current cycle counter value. It is safe for concurrent
// use and never blocks.
func Read() CycleCount {
	return CycleCount(cycles.Read())
}

// Mechanism names the instruction backing Read: "rdtsc", "cntvct_el0" or
// "runtime.cputicks".
func Mechanism() string {
	return cycles.Mechanism()
}

// Elapsed returns the number of counts from start to end. The subtraction
// is modulo 2^64, so one wraparound between the reads is accounted for.
func Elapsed(start, end CycleCount) CycleCount {
	return end - start
}
