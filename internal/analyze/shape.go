package analyze

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape classifies a named type by whether a builder can be derived from it.
// Only ShapeNamedFields is supported.
type Shape int

const (
	ShapeUnknown     Shape = iota
	ShapeNamedFields       // struct with at least one named field and nothing embedded
	ShapeEmpty             // struct{} or a struct of "_" fields only
	ShapeEmbedded          // struct with an embedded (positional) field
	ShapeEnum              // basic type with declared constants
	ShapeUnion             // interface type
	ShapeGeneric           // struct with type parameters
	ShapeOther             // any other named type, including aliases
)

// Supported reports whether a builder can be generated for this shape.
func (s Shape) Supported() bool {
	return s == ShapeNamedFields
}

// ClassifyShape returns the shape of a named type.
func ClassifyShape(t *TypeInfo) Shape {
	switch {
	case t == nil:
		return ShapeUnknown
	case t.IsAlias:
		return ShapeOther
	}

	switch t.Kind {
	case TypeKindStruct:
		return classifyStruct(t)
	case TypeKindInterface:
		return ShapeUnion
	case TypeKindBasic:
		if t.IsEnum {
			return ShapeEnum
		}

		return ShapeOther
	case TypeKindUnknown:
		return ShapeUnknown
	default:
		return ShapeOther
	}
}

func classifyStruct(t *TypeInfo) Shape {
	if t.TypeParams > 0 {
		return ShapeGeneric
	}

	named := 0
	for i := range t.Fields {
		f := &t.Fields[i]
		if f.Embedded {
			return ShapeEmbedded
		}

		if !f.IsBlank() {
			named++
		}
	}

	if named == 0 {
		return ShapeEmpty
	}

	return ShapeNamedFields
}
