package rdtsc

// Measure runs fn the given number of times, reading the counter around each
// run, and returns the mean count per run. Any setup fn needs between runs
// belongs inside fn.
//
// The result includes the cost of one read; see Overhead.
func Measure(fn func(), iterations int) (CycleCount, error) {
	if fn == nil {
		return 0, ErrNilFunc
	}

	if iterations < 1 {
		return 0, ErrInvalidIterations
	}

	var total CycleCount

	for range iterations {
		start := Read()
		fn()
		total += Elapsed(start, Read())
	}

	return total / CycleCount(iterations), nil
}

// PerByte divides a count over the n bytes it processed. It returns 0 for
// an empty input.
func PerByte(c CycleCount, n int) float64 {
	if n <= 0 {
		return 0
	}

	return float64(c) / float64(n)
}
