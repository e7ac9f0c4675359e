package affinity

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Gets temporarily swapped out with a mock during tests.
var setAffinity = unix.SchedSetaffinity

// pin binds the current thread (pid 0) to cpu and returns a function
// reinstating the mask that was in effect before.
func pin(cpu int) (func() error, error) {
	var prev unix.CPUSet
	if err := unix.SchedGetaffinity(0, &prev); err != nil {
		return nil, errors.Wrap(err, "affinity: read cpu mask")
	}

	if !prev.IsSet(cpu) {
		return nil, errors.Wrapf(ErrInvalidCPU, "cpu %d not in allowed set (%d cpus)", cpu, prev.Count())
	}

	var set unix.CPUSet
	set.Set(cpu)

	if err := setAffinity(0, &set); err != nil {
		return nil, errors.Wrapf(err, "affinity: bind to cpu %d", cpu)
	}

	return func() error {
		return errors.Wrap(setAffinity(0, &prev), "affinity: restore cpu mask")
	}, nil
}

// Allowed lists the logical CPUs the calling thread may run on.
func Allowed() ([]int, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return nil, errors.Wrap(err, "affinity: read cpu mask")
	}

	cpus := make([]int, 0, set.Count())
	for cpu := 0; len(cpus) < set.Count(); cpu++ {
		if set.IsSet(cpu) {
			cpus = append(cpus, cpu)
		}
	}

	return cpus, nil
}
