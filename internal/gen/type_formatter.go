package gen

import (
	"fmt"
	"go/types"
	"path"
	"sort"
	"strings"

	"builder-generator/internal/common"
)

// Import paths of the runtime packages generated code depends on.
const (
	OptionalPkgPath = "builder-generator/optional"
	BuilderPkgPath  = "builder-generator/builder"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string // Empty when the package name matches the path
	Path  string
}

// importSet assigns collision-free package names to the imports of one
// generated file.
type importSet struct {
	// contextPkgPath is the package being generated into; its types are
	// referenced unqualified.
	contextPkgPath string
	names          map[string]string // path -> name used in code
	used           map[string]bool   // names taken by imports or locals
	specs          []importSpec
}

// newImportSet creates an importSet for a file of package contextPkgPath.
// reserved names are never assigned to imports.
func newImportSet(contextPkgPath string, reserved ...string) *importSet {
	s := &importSet{
		contextPkgPath: contextPkgPath,
		names:          make(map[string]string),
		used:           make(map[string]bool),
	}

	for _, r := range reserved {
		s.used[r] = true
	}

	return s
}

// add imports pkgPath, preferring pkgName, and returns the name to use.
func (s *importSet) add(pkgPath, pkgName string) string {
	if name, ok := s.names[pkgPath]; ok {
		return name
	}

	name := pkgName
	for i := 1; s.used[name]; i++ {
		name = fmt.Sprintf("%s%d", pkgName, i)
	}

	s.used[name] = true
	s.names[pkgPath] = name

	spec := importSpec{Path: pkgPath}
	if name != implicitName(pkgPath) {
		spec.Alias = name
	}

	s.specs = append(s.specs, spec)

	return name
}

// qualifier returns a types.Qualifier that imports every package it is
// asked about, except the context package.
func (s *importSet) qualifier() types.Qualifier {
	return func(pkg *types.Package) string {
		if pkg.Path() == s.contextPkgPath {
			return ""
		}

		return s.add(pkg.Path(), pkg.Name())
	}
}

// typeString renders t as it must be written inside the context package.
func (s *importSet) typeString(t types.Type) string {
	return types.TypeString(t, s.qualifier())
}

// sorted returns the imports ordered by path.
func (s *importSet) sorted() []importSpec {
	out := append([]importSpec(nil), s.specs...)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Path < out[j].Path
	})

	return out
}

// implicitName returns the name an unaliased import of pkgPath is assumed
// to bind: the last path element, skipping a major version suffix and
// dropping a ".vN" extension (gopkg.in style).
func implicitName(pkgPath string) string {
	base := common.PkgAlias(pkgPath)

	if common.IsGoVersionSuffix(base) {
		if parent := path.Dir(pkgPath); parent != "." {
			base = path.Base(parent)
		}
	}

	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}

	return strings.ReplaceAll(base, "-", "_")
}
