package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exports returns the names listed in //export directives of the package's
// non-test sources.
func exports(t *testing.T) []string {
	t.Helper()

	paths, err := filepath.Glob("*.go")
	require.NoError(t, err)

	fset := token.NewFileSet()

	var names []string

	for _, path := range paths {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}

		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		require.NoError(t, err)

		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Doc == nil {
				continue
			}

			for _, c := range fn.Doc.List {
				if name, ok := strings.CutPrefix(c.Text, "//export "); ok {
					names = append(names, strings.TrimSpace(name))
				}
			}
		}
	}

	return names
}

func TestExportsOnlyRdtsc(t *testing.T) {
	assert.Equal(t, []string{"rdtsc"}, exports(t))
}

func TestExportedRead(t *testing.T) {
	a := uint64(rdtsc())
	b := uint64(rdtsc())

	assert.NotZero(t, a)
	t.Logf("rdtsc() = %d, %d", a, b)
}
