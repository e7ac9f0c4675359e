package cpu

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()

	assert.Equal(t, runtime.GOARCH, f.Architecture)

	if runtime.GOARCH == "amd64" {
		// SSE2 is part of the amd64 baseline.
		assert.True(t, f.Has("sse2"), "flags: %v", f.Flags)
	}

	t.Logf("%s: %v", f.Architecture, f.Flags)
}

func TestHas(t *testing.T) {
	f := Features{Flags: []string{"a", "b"}}

	assert.True(t, f.Has("b"))
	assert.False(t, f.Has("c"))
	assert.False(t, Features{}.Has("a"))
}

func TestSetFlags(t *testing.T) {
	got := setFlags([]flag{{"x", true}, {"y", false}, {"z", true}})

	assert.Equal(t, []string{"x", "z"}, got)
	assert.Empty(t, setFlags(nil))
}
