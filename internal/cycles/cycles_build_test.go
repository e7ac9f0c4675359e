package cycles

import (
	"go/build"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readPaths lists the files that may define readCycles. cycles.go is common
// to every target.
func readPaths(t *testing.T) []string {
	t.Helper()

	paths, err := filepath.Glob("cycles_*.go")
	require.NoError(t, err)

	var files []string

	for _, p := range paths {
		if !strings.HasSuffix(p, "_test.go") {
			files = append(files, p)
		}
	}

	return files
}

// TestBuildSelectsOnePath checks that each target compiles exactly one read
// path, and that targets without a counter land on the failing file.
func TestBuildSelectsOnePath(t *testing.T) {
	tests := []struct {
		goarch string
		purego bool
		want   string
	}{
		{"amd64", false, "cycles_x86.go"},
		{"386", false, "cycles_x86.go"},
		{"arm64", false, "cycles_arm64.go"},
		{"amd64", true, "cycles_purego.go"},
		{"386", true, "cycles_purego.go"},
		// The runtime tick source on arm64 is the monotonic clock.
		{"arm64", true, "cycles_unsupported.go"},
		{"riscv64", false, "cycles_unsupported.go"},
		{"riscv64", true, "cycles_unsupported.go"},
	}

	files := readPaths(t)

	for _, tt := range tests {
		name := tt.goarch
		if tt.purego {
			name += "/purego"
		}

		t.Run(name, func(t *testing.T) {
			ctx := build.Default
			ctx.GOOS = "linux"
			ctx.GOARCH = tt.goarch
			ctx.BuildTags = nil

			if tt.purego {
				ctx.BuildTags = []string{"purego"}
			}

			var matched []string

			for _, f := range files {
				ok, err := ctx.MatchFile(".", f)
				require.NoError(t, err)

				if ok {
					matched = append(matched, f)
				}
			}

			assert.Equal(t, []string{tt.want}, matched)
		})
	}
}
