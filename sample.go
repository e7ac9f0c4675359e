package rdtsc

import "math"

// Sample fills dst with back-to-back reads.
func Sample(dst []CycleCount) {
	for i := range dst {
		dst[i] = Read()
	}
}

// Decreases counts adjacent pairs in seq where the later reading is smaller
// than the earlier one. On a single CPU that only happens at wraparound, so
// anything above one points at a core migration or unsynchronized counters.
func Decreases(seq []CycleCount) int {
	n := 0
	for i := 1; i < len(seq); i++ {
		if seq[i] < seq[i-1] {
			n++
		}
	}

	return n
}

// Overhead estimates the cost of a read as the smallest gap between two
// back-to-back reads over the given number of rounds.
func Overhead(rounds int) (CycleCount, error) {
	if rounds < 1 {
		return 0, ErrInvalidRounds
	}

	best := CycleCount(math.MaxUint64)

	for range rounds {
		c0 := Read()
		if d := Elapsed(c0, Read()); d < best {
			best = d
		}
	}

	return best, nil
}
