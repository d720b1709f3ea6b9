// Package analyzetest type-checks Go source held in memory and loads it into
// an analyze.TypeGraph, for tests that should not depend on go/packages.
package analyzetest

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"testing"

	"github.com/stretchr/testify/require"

	"builder-generator/internal/analyze"
)

// Dir is the directory reported for packages loaded by Load.
const Dir = "/src/example"

// Load parses and type-checks src as the single file of package pkgPath and
// returns the resulting graph.
func Load(t *testing.T, pkgPath, src string) *analyze.TypeGraph {
	t.Helper()

	return LoadFiles(t, pkgPath, src)
}

// LoadFiles is Load for a package made of several files, named src0.go,
// src1.go and so on.
func LoadFiles(t *testing.T, pkgPath string, srcs ...string) *analyze.TypeGraph {
	t.Helper()

	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(srcs))
	names := make([]string, 0, len(srcs))

	for i, src := range srcs {
		filename := path.Join(Dir, fmt.Sprintf("src%d.go", i))

		f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
		require.NoError(t, err)

		files = append(files, f)
		names = append(names, filename)
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(pkgPath, fset, files, nil)
	require.NoError(t, err)

	a := analyze.NewAnalyzer()
	a.AnalyzePackage(pkg, Dir, names...)

	return a.Graph()
}

// Record loads src and extracts the named type as a record.
func Record(t *testing.T, pkgPath, src, name string) *analyze.Record {
	t.Helper()

	graph := Load(t, pkgPath, src)

	rec, err := graph.ExtractRecord(analyze.TypeID{PkgPath: pkgPath, Name: name})
	require.NoError(t, err)

	return rec
}
