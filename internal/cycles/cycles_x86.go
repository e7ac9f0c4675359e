//go:build (amd64 || 386) && !purego

package cycles

const mechanism = "rdtsc"

// rdtsc executes RDTSC and returns EAX and EDX as is.
// Implemented in cycles_amd64.s and cycles_386.s
//
//go:noescape
func rdtsc() (lo, hi uint32)

func readCycles() uint64 {
	lo, hi := rdtsc()
	return combine(hi, lo)
}
