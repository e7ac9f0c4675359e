// Package cycles reads the processor's hardware cycle counter.
//
// Exactly one read path is compiled in, chosen by build constraints:
// RDTSC on amd64 and 386, CNTVCT_EL0 on arm64, and on amd64 and 386 built
// with the purego tag the runtime's own RDTSC-based tick counter. Other
// targets, arm64 with purego included, do not build.
//
// The assembly paths issue no serializing instruction around the read, so
// the value may be sampled earlier or later than surrounding instructions
// retire. The purego path is fenced by the runtime.
package cycles

// Read returns the current value of the cycle counter.
//
// Successive reads on the same logical CPU are non-decreasing until the
// counter wraps at 2^64. Values taken on different CPUs are only
// comparable if the platform keeps their counters in sync, which is not
// checked here.
func Read() uint64 {
	return readCycles()
}

// Mechanism names the instruction or source backing Read.
func Mechanism() string {
	return mechanism
}

// combine assembles a counter exposed as two 32-bit halves.
func combine(hi, lo uint32) uint64 {
	return uint64(hi)<<32 | uint64(lo)
}
