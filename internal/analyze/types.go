package analyze

import (
	"go/types"
	"reflect"

	"builder-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "builder-generator/examples/command"
	Name    string // e.g., "Command"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// TypeKind represents the kind of a named type's underlying type.
type TypeKind int

const (
	TypeKindUnknown   TypeKind = iota
	TypeKindBasic              // int, string, bool, etc.
	TypeKindStruct             // struct type
	TypeKindInterface          // interface type
	TypeKindPointer            // pointer to another type
	TypeKindSlice              // slice of another type
	TypeKindArray              // array of another type
	TypeKindMap                // map type
	TypeKindFunc               // function type
	TypeKindChan               // channel type
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindInterface:
		return "interface"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindMap:
		return "map"
	case TypeKindFunc:
		return "func"
	case TypeKindChan:
		return "chan"
	default:
		return common.UnknownStr
	}
}

// kindOf maps an underlying go/types type to a TypeKind.
func kindOf(t types.Type) TypeKind {
	switch t.(type) {
	case *types.Basic:
		return TypeKindBasic
	case *types.Struct:
		return TypeKindStruct
	case *types.Interface:
		return TypeKindInterface
	case *types.Pointer:
		return TypeKindPointer
	case *types.Slice:
		return TypeKindSlice
	case *types.Array:
		return TypeKindArray
	case *types.Map:
		return TypeKindMap
	case *types.Signature:
		return TypeKindFunc
	case *types.Chan:
		return TypeKindChan
	default:
		return TypeKindUnknown
	}
}

// TypeInfo describes a named Go type in the type graph.
type TypeInfo struct {
	ID         TypeID      // Unique identifier
	Kind       TypeKind    // Kind of the underlying type
	Fields     []FieldInfo // For structs, the list of fields in declaration order
	GoType     types.Type  // The original go/types.Type
	Exported   bool        // Whether the type name is exported
	IsAlias    bool        // Declared as "type A = B"
	TypeParams int         // Number of type parameters (0 for non-generic types)
	IsEnum     bool        // Basic type with constants of this type declared in its package
}

// FieldInfo describes a struct field.
type FieldInfo struct {
	Name     string            // Go field name
	Exported bool              // Whether the field is exported
	Type     types.Type        // Declared field type
	Tag      reflect.StructTag // Raw struct tag
	Embedded bool              // Whether the field is embedded (anonymous)
	Index    int               // Field index in the struct
}

// IsBlank reports whether the field is a "_" padding field.
func (f *FieldInfo) IsBlank() bool {
	return f.Name == "_"
}

// TypeGraph holds all analyzed types from loaded packages.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types:    make(map[TypeID]*TypeInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Directory holding the package sources
	Files []string // Absolute paths of the package's Go files
	Types []TypeID // Named types defined in this package, sorted by name
}

// PackageTypes returns the TypeInfo of every named type declared in pkgPath,
// sorted by name.
func (g *TypeGraph) PackageTypes(pkgPath string) []*TypeInfo {
	pkg, ok := g.Packages[pkgPath]
	if !ok {
		return nil
	}

	infos := make([]*TypeInfo, 0, len(pkg.Types))
	for _, id := range pkg.Types {
		if info := g.Types[id]; info != nil {
			infos = append(infos, info)
		}
	}

	return infos
}
