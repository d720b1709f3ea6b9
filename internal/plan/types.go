package plan

import (
	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
)

// Options controls the names of generated declarations.
type Options struct {
	// Suffix is appended to the record name to form the builder type name.
	Suffix string
	// ConstructorPrefix is prepended to the builder name to form the constructor name.
	ConstructorPrefix string
	// SetterPrefix is prepended to each field name to form its setter name.
	// Empty means setters are named after their fields.
	SetterPrefix string
	// BuildMethod is the name of the validating finalizer.
	BuildMethod string
}

// DefaultOptions returns the default naming options.
func DefaultOptions() Options {
	return Options{
		Suffix:            "Builder",
		ConstructorPrefix: "New",
		SetterPrefix:      "",
		BuildMethod:       "Build",
	}
}

// GeneratedLocals are the identifiers declared inside generated methods: the
// receiver, the setter parameter and the locals of the build method. A record
// or builder type carrying one of these names would be shadowed.
var GeneratedLocals = []string{"b", "v", "out", "ok"}

// Request asks for a builder for one type.
type Request struct {
	Type    analyze.TypeID
	Options Options
}

// Plan is the output of resolution. It contains everything needed for code
// generation.
type Plan struct {
	// Builders lists one entry per requested record, in request order.
	Builders []BuilderPlan
	// TypeGraph holds all analyzed types and packages.
	TypeGraph *analyze.TypeGraph
	// Diagnostics contains all notes, warnings and errors from resolution.
	Diagnostics diagnostic.Diagnostics
}

// BuilderPlan describes the companion builder of one record.
type BuilderPlan struct {
	Record          *analyze.Record
	BuilderName     string
	ConstructorName string
	BuildMethod     string
	// Filename is the base name of the generated file.
	Filename string
	// Setters has one entry per record field, in declaration order.
	Setters []SetterPlan
}

// SetterPlan describes the slot and setter generated for one record field.
type SetterPlan struct {
	Field analyze.RecordField
	// Slot is the builder's field holding the optional value.
	Slot string
	// Setter is the name of the method setting the slot.
	Setter string
}
