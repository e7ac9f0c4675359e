package cycles

import (
	"math"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/rdtsc/internal/affinity"
)

// pinned runs fn with the goroutine held on one CPU where the OS allows it,
// so every read in fn comes from the same counter.
func pinned(t *testing.T, fn func()) {
	t.Helper()

	cpus, err := affinity.Allowed()
	require.NoError(t, err)

	unpin, err := affinity.Pin(cpus[0])
	if err != nil && !affinity.IsSoft(err) {
		t.Fatalf("pin: %v", err)
	}
	defer func() { assert.NoError(t, unpin()) }()

	fn()
}

func TestCombine(t *testing.T) {
	tests := []struct {
		name   string
		hi, lo uint32
		want   uint64
	}{
		{"zero", 0, 0, 0},
		{"low only", 0, 0xdeadbeef, 0xdeadbeef},
		{"high only", 1, 0, 1 << 32},
		{"both", 0x12345678, 0x9abcdef0, 0x123456789abcdef0},
		{"max", math.MaxUint32, math.MaxUint32, math.MaxUint64},
		{"low does not bleed into high", 0, math.MaxUint32, math.MaxUint32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, combine(tt.hi, tt.lo))
		})
	}
}

func TestReadNonDecreasing(t *testing.T) {
	pinned(t, func() {
		c1 := Read()
		c2 := Read()

		assert.GreaterOrEqual(t, c2, c1, "counter went backwards: c1=%d, c2=%d", c1, c2)
	})
}

func TestReadAdvances(t *testing.T) {
	pinned(t, func() {
		c1 := Read()
		time.Sleep(time.Millisecond)
		c2 := Read()

		assert.Greater(t, c2, c1, "counter did not advance over 1ms: c1=%d, c2=%d", c1, c2)
		t.Logf("delta over 1ms: %d", c2-c1)
	})
}

func TestReadTightLoop(t *testing.T) {
	const samples = 1000

	values := make([]uint64, samples)

	pinned(t, func() {
		for i := range values {
			values[i] = Read()
		}
	})

	decreases := 0
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			decreases++
		}
	}

	// A single drop is the 2^64 wraparound.
	assert.LessOrEqual(t, decreases, 1, "first=%d last=%d", values[0], values[samples-1])
}

func TestReadConcurrent(t *testing.T) {
	const (
		goroutines = 8
		reads      = 1000
	)

	cpus, err := affinity.Allowed()
	require.NoError(t, err)

	var wg sync.WaitGroup
	decreases := make([]int, goroutines)
	pinErrs := make([]error, goroutines)

	for g := range goroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			unpin, err := affinity.Pin(cpus[g%len(cpus)])
			defer func() {
				if uerr := unpin(); pinErrs[g] == nil {
					pinErrs[g] = uerr
				}
			}()

			if err != nil && !affinity.IsSoft(err) {
				pinErrs[g] = err
				return
			}

			prev := Read()
			for range reads {
				cur := Read()
				if cur < prev {
					decreases[g]++
				}
				prev = cur
			}
		}()
	}

	wg.Wait()

	for g, d := range decreases {
		require.NoError(t, pinErrs[g], "goroutine %d", g)
		assert.LessOrEqual(t, d, 1, "goroutine %d", g)
	}
}

func TestMechanism(t *testing.T) {
	want := map[string]string{
		"amd64": "rdtsc",
		"386":   "rdtsc",
		"arm64": "cntvct_el0",
	}[runtime.GOARCH]

	if Mechanism() == "runtime.cputicks" {
		assert.Contains(t, []string{"amd64", "386"}, runtime.GOARCH, "purego read path outside x86")
		return
	}

	assert.Equal(t, want, Mechanism())
}

func BenchmarkRead(b *testing.B) {
	for range b.N {
		_ = Read()
	}
}

func BenchmarkCombine(b *testing.B) {
	var sink uint64
	for i := range b.N {
		sink += combine(uint32(i), uint32(i))
	}

	_ = sink
}
