//go:build !linux

package affinity

import "runtime"

func pin(int) (func() error, error) {
	return noop, ErrUnsupported
}

// Allowed lists the logical CPUs the calling thread may run on. Without a
// way to query the mask it assumes all of them.
func Allowed() ([]int, error) {
	cpus := make([]int, runtime.NumCPU())
	for i := range cpus {
		cpus[i] = i
	}

	return cpus, nil
}
