//go:build purego && (amd64 || 386)

package cycles

import _ "unsafe" // Required for go:linkname

const mechanism = "runtime.cputicks"

// cputicks is the runtime's own tick source. On amd64 and 386 it executes
// RDTSC and hands back the combined 64-bit value, but it fences the read
// (RDTSCP, or MFENCE+LFENCE+RDTSC) unlike the assembly path.
//
// arm64 is deliberately absent: there the runtime returns the monotonic
// clock, not the counter.
//
//go:linkname cputicks runtime.cputicks
func cputicks() int64

func readCycles() uint64 {
	return uint64(cputicks())
}
