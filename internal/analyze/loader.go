package analyze

import (
	"context"
	"errors"
	"fmt"
	"go/types"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph.
type Analyzer struct {
	// Dir is the directory patterns are resolved against. Empty means the
	// current working directory.
	Dir string
	// BuildFlags are passed through to the go command.
	BuildFlags []string

	graph *TypeGraph
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewTypeGraph(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., ".", "builder-generator/examples/command").
func (a *Analyzer) LoadPackages(ctx context.Context, patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Context:    ctx,
		Mode:       LoadMode,
		Dir:        a.Dir,
		BuildFlags: a.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors. Errors inside builder files are skipped: a
	// builder generated for an earlier version of its record stops
	// type-checking once a field is renamed, and must not block regeneration.
	generated := make(map[string]bool)

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			file := errorFile(e.Pos, a.Dir)
			if file != "" && isGenerated(file, generated) {
				continue
			}

			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	for _, pkg := range pkgs {
		if pkg.Types == nil {
			continue
		}

		dir := ""
		if len(pkg.GoFiles) > 0 {
			dir = filepath.Dir(pkg.GoFiles[0])
		}

		a.AnalyzePackage(pkg.Types, dir, pkg.GoFiles...)
	}

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// AnalyzePackage records every package-level named type of a type-checked
// package in the graph.
func (a *Analyzer) AnalyzePackage(pkg *types.Package, dir string, files ...string) *PackageInfo {
	pkgInfo := &PackageInfo{
		Path:  pkg.Path(),
		Name:  pkg.Name(),
		Dir:   dir,
		Files: files,
	}

	scope := pkg.Scope()
	enums := enumTypes(scope)

	// scope.Names is sorted, which keeps the graph deterministic.
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok {
			continue
		}

		info := a.analyzeTypeName(pkg.Path(), typeName)
		info.IsEnum = info.Kind == TypeKindBasic && enums[typeName]

		a.graph.Types[info.ID] = info
		pkgInfo.Types = append(pkgInfo.Types, info.ID)
	}

	a.graph.Packages[pkg.Path()] = pkgInfo

	return pkgInfo
}

// analyzeTypeName builds the TypeInfo of one package-level type declaration.
func (a *Analyzer) analyzeTypeName(pkgPath string, tn *types.TypeName) *TypeInfo {
	info := &TypeInfo{
		ID:       TypeID{PkgPath: pkgPath, Name: tn.Name()},
		GoType:   tn.Type(),
		Exported: tn.Exported(),
		IsAlias:  tn.IsAlias(),
	}

	if named, ok := tn.Type().(*types.Named); ok && named.TypeParams() != nil {
		info.TypeParams = named.TypeParams().Len()
	}

	underlying := tn.Type().Underlying()
	info.Kind = kindOf(underlying)

	if st, ok := underlying.(*types.Struct); ok {
		info.Fields = analyzeStructFields(st)
	}

	return info
}

// analyzeStructFields extracts every field of a struct type, exported or
// not, in declaration order.
func analyzeStructFields(st *types.Struct) []FieldInfo {
	fields := make([]FieldInfo, 0, st.NumFields())

	for i := range st.NumFields() {
		field := st.Field(i)

		fields = append(fields, FieldInfo{
			Name:     field.Name(),
			Exported: field.Exported(),
			Type:     field.Type(),
			Tag:      reflect.StructTag(st.Tag(i)),
			Embedded: field.Embedded(),
			Index:    i,
		})
	}

	return fields
}

// enumTypes returns the type names that have at least one constant of that
// type declared in scope.
func enumTypes(scope *types.Scope) map[*types.TypeName]bool {
	enums := make(map[*types.TypeName]bool)

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		if named, ok := c.Type().(*types.Named); ok && named.Obj().Parent() == scope {
			enums[named.Obj()] = true
		}
	}

	return enums
}

// GeneratedHeader is the first line of every generated builder file.
const GeneratedHeader = "// Code generated by builder-generator. DO NOT EDIT."

// IsGeneratedSource reports whether src is a generated builder file.
func IsGeneratedSource(src []byte) bool {
	return strings.HasPrefix(string(src), GeneratedHeader+"\n")
}

// isGenerated reports whether the file at path is a generated builder file,
// caching the answer per path.
func isGenerated(path string, cache map[string]bool) bool {
	if v, ok := cache[path]; ok {
		return v
	}

	src, err := os.ReadFile(path)
	cache[path] = err == nil && IsGeneratedSource(src)

	return cache[path]
}

// errorFile extracts the file name from a packages.Error position of the
// form "file:line:col" or "file:line". Relative names are resolved against
// dir. It returns "" when pos names no file.
func errorFile(pos, dir string) string {
	file := pos
	for range 2 {
		i := strings.LastIndexByte(file, ':')
		if i < 0 {
			break
		}

		if _, err := strconv.Atoi(file[i+1:]); err != nil {
			break
		}

		file = file[:i]
	}

	if file == "" || file == "-" || file == pos {
		return ""
	}

	if !filepath.IsAbs(file) {
		file = filepath.Join(dir, file)
	}

	return file
}
