// Package affinity keeps the calling goroutine on a single logical CPU so
// that consecutive counter reads come from the same per-CPU counter.
package affinity

import (
	"runtime"

	"github.com/pkg/errors"
)

// Sentinel errors returned by Pin.
var (
	// ErrInvalidCPU is returned when the CPU index is negative or outside
	// the set of CPUs the process may run on.
	ErrInvalidCPU = errors.New("affinity: invalid cpu")

	// ErrUnsupported is returned on platforms where a thread cannot be bound
	// to a CPU. The goroutine is still locked to its OS thread.
	ErrUnsupported = errors.New("affinity: cpu pinning not supported on this platform")
)

// Gets temporarily swapped out with a mock during tests.
var unlockOSThread = runtime.UnlockOSThread

func noop() error { return nil }

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the given logical CPU. The returned function restores the previous CPU mask
// and unlocks the thread; it must be called from the same goroutine and is
// never nil.
//
// If the mask cannot be restored, unpin returns the error and leaves the
// thread locked, so the runtime discards it when the goroutine exits rather
// than scheduling other goroutines on a thread stuck to one CPU.
//
// ErrUnsupported is a soft failure: the thread lock is in place and unpin
// must still be called.
func Pin(cpu int) (unpin func() error, err error) {
	if cpu < 0 {
		return noop, errors.Wrapf(ErrInvalidCPU, "cpu %d", cpu)
	}

	runtime.LockOSThread()

	restore, err := pin(cpu)
	if err != nil && !IsSoft(err) {
		unlockOSThread()
		return noop, err
	}

	return func() error {
		if err := restore(); err != nil {
			return err
		}

		unlockOSThread()

		return nil
	}, err
}

// IsSoft reports whether err from Pin left the goroutine usable, just not
// bound to a CPU.
func IsSoft(err error) bool {
	return errors.Is(err, ErrUnsupported)
}
