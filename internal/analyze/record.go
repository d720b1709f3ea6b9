package analyze

import (
	"errors"
	"fmt"
	"go/types"
	"reflect"
)

// ErrUnsupportedShape is wrapped by every error reporting a type that is not
// a struct with named fields.
var ErrUnsupportedShape = errors.New("unsupported type shape")

// ErrTypeNotFound is returned when a requested type is not in the graph.
var ErrTypeNotFound = errors.New("type not found")

// UnsupportedShapeError reports a type whose shape cannot have a builder.
type UnsupportedShapeError struct {
	Type  TypeID
	Shape Shape
}

// Error implements error.
func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("%s: %s shape is not supported, only structs with named fields can have builders",
		e.Type, e.Shape)
}

// Unwrap returns ErrUnsupportedShape.
func (e *UnsupportedShapeError) Unwrap() error {
	return ErrUnsupportedShape
}

// Record is a struct type with named fields, in declaration order.
type Record struct {
	ID       TypeID
	PkgName  string
	Dir      string
	Exported bool
	Fields   []RecordField
	// GoType is the record's named type.
	GoType types.Type
	// Pkg is the declaring package. Generated code shares its scope.
	Pkg *types.Package
}

// Name returns the record's type name.
func (r *Record) Name() string {
	return r.ID.Name
}

// RecordField is a settable field of a Record.
type RecordField struct {
	Name     string
	Exported bool
	Type     types.Type
	Tag      reflect.StructTag
	Index    int
}

// ExtractRecord returns the record described by t, or an
// *UnsupportedShapeError when t is not a struct with named fields.
// Blank "_" fields are skipped since they cannot be set.
func ExtractRecord(t *TypeInfo) (*Record, error) {
	shape := ClassifyShape(t)
	if !shape.Supported() {
		var id TypeID
		if t != nil {
			id = t.ID
		}

		return nil, &UnsupportedShapeError{Type: id, Shape: shape}
	}

	rec := &Record{
		ID:       t.ID,
		Exported: t.Exported,
		Fields:   make([]RecordField, 0, len(t.Fields)),
		GoType:   t.GoType,
	}

	if named, ok := t.GoType.(*types.Named); ok {
		rec.Pkg = named.Obj().Pkg()
	}

	for i := range t.Fields {
		f := &t.Fields[i]
		if f.IsBlank() {
			continue
		}

		rec.Fields = append(rec.Fields, RecordField{
			Name:     f.Name,
			Exported: f.Exported,
			Type:     f.Type,
			Tag:      f.Tag,
			Index:    f.Index,
		})
	}

	return rec, nil
}

// ExtractRecord looks up id in the graph and extracts it as a record,
// filling in package details.
func (g *TypeGraph) ExtractRecord(id TypeID) (*Record, error) {
	info := g.GetType(id)
	if info == nil {
		return nil, fmt.Errorf("%w: %s", ErrTypeNotFound, id)
	}

	rec, err := ExtractRecord(info)
	if err != nil {
		return nil, err
	}

	if pkg, ok := g.Packages[id.PkgPath]; ok {
		rec.PkgName = pkg.Name
		rec.Dir = pkg.Dir
	}

	return rec, nil
}
