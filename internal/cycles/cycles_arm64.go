//go:build arm64 && !purego

package cycles

const mechanism = "cntvct_el0"

// cntvct reads the virtual counter (CNTVCT_EL0).
// Implemented in cycles_arm64.s
//
//go:noescape
func cntvct() uint64

func readCycles() uint64 {
	return cntvct()
}
