package plan

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"slices"

	"go.uber.org/zap"

	"builder-generator/internal/analyze"
	"builder-generator/internal/common"
	"builder-generator/internal/diagnostic"
)

// Resolver builds plans from a type graph.
type Resolver struct {
	graph  *analyze.TypeGraph
	logger *zap.SugaredLogger
}

// NewResolver creates a new Resolver. A nil logger discards output.
func NewResolver(graph *analyze.TypeGraph, logger *zap.SugaredLogger) *Resolver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Resolver{
		graph:  graph,
		logger: logger,
	}
}

// Resolve plans a builder for every request. Records with an unsupported
// shape and naming collisions are fatal: the returned error wraps
// analyze.ErrUnsupportedShape for the former, and the plan is still returned
// so callers can print its diagnostics.
func (r *Resolver) Resolve(reqs []Request) (*Plan, error) {
	p := &Plan{
		Builders:  make([]BuilderPlan, 0, len(reqs)),
		TypeGraph: r.graph,
	}

	var errs []error

	for _, req := range reqs {
		rec, err := r.graph.ExtractRecord(req.Type)
		if err != nil {
			var shapeErr *analyze.UnsupportedShapeError
			if errors.As(err, &shapeErr) {
				p.Diagnostics.AddError("unsupported_shape", err.Error(), req.Type.Name, "")
			} else {
				p.Diagnostics.AddError("type_not_found", err.Error(), req.Type.Name, "")
			}

			errs = append(errs, err)

			continue
		}

		bp := r.planBuilder(rec, req.Options, &p.Diagnostics)
		r.logger.Debugw("planned builder",
			"record", rec.ID.String(),
			"builder", bp.BuilderName,
			"fields", len(bp.Setters))

		p.Builders = append(p.Builders, bp)
	}

	checkFilenames(p)

	if len(errs) > 0 {
		return p, errors.Join(errs...)
	}

	if p.Diagnostics.HasErrors() {
		return p, p.Diagnostics.Error()
	}

	return p, nil
}

// planBuilder assigns names for one record and reports collisions.
func (r *Resolver) planBuilder(rec *analyze.Record, opts Options, diags *diagnostic.Diagnostics) BuilderPlan {
	name := rec.Name()

	bp := BuilderPlan{
		Record:          rec,
		BuilderName:     BuilderName(name, opts),
		ConstructorName: ConstructorName(rec, opts),
		BuildMethod:     opts.BuildMethod,
		Filename:        Filename(name, opts),
		Setters:         make([]SetterPlan, 0, len(rec.Fields)),
	}

	for _, ident := range []struct{ what, value string }{
		{"builder type", bp.BuilderName},
		{"constructor", bp.ConstructorName},
		{"build method", bp.BuildMethod},
	} {
		if !token.IsIdentifier(ident.value) {
			diags.AddError("invalid_identifier",
				fmt.Sprintf("%s name %q is not a valid Go identifier", ident.what, ident.value), name, "")
		}
	}

	for _, ident := range []struct{ what, value string }{
		{"record", name},
		{"builder type", bp.BuilderName},
	} {
		if slices.Contains(GeneratedLocals, ident.value) {
			diags.AddError("reserved_name",
				fmt.Sprintf("%s name %s is shadowed by a local of the generated methods", ident.what, ident.value), name, "")
		}
	}

	if bp.ConstructorName == bp.BuilderName {
		diags.AddError("constructor_conflict",
			fmt.Sprintf("constructor %s has the same name as the builder type", bp.ConstructorName), name, "")
	}

	methods := recordMethods(rec)
	slots := make(map[string]string, len(rec.Fields))
	setters := make(map[string]string, len(rec.Fields))

	for _, f := range rec.Fields {
		sp := SetterPlan{
			Field:  f,
			Slot:   SlotName(f.Name),
			Setter: SetterName(f.Name, opts),
		}

		if other, ok := slots[sp.Slot]; ok {
			diags.AddError("slot_conflict",
				fmt.Sprintf("fields %s and %s both map to builder field %s", other, f.Name, sp.Slot), name, f.Name)
		}

		if other, ok := setters[sp.Setter]; ok {
			diags.AddError("setter_conflict",
				fmt.Sprintf("fields %s and %s both map to setter %s", other, f.Name, sp.Setter), name, f.Name)
		}

		if sp.Setter == bp.BuildMethod {
			diags.AddError("setter_conflict",
				fmt.Sprintf("setter %s collides with the build method", sp.Setter), name, f.Name)
		}

		if !token.IsIdentifier(sp.Setter) {
			diags.AddError("invalid_identifier",
				fmt.Sprintf("setter name %q is not a valid Go identifier", sp.Setter), name, f.Name)
		}

		if methods[sp.Setter] {
			diags.AddWarning("setter_mirrors_method",
				fmt.Sprintf("setter %s has the name of method %s.%s", sp.Setter, name, sp.Setter), name, f.Name)
		}

		if !f.Exported && token.IsExported(sp.Setter) {
			diags.AddInfo("exported_setter",
				fmt.Sprintf("unexported field is settable through exported method %s", sp.Setter), name, f.Name)
		}

		slots[sp.Slot] = f.Name
		setters[sp.Setter] = f.Name
		bp.Setters = append(bp.Setters, sp)
	}

	// Methods and fields share one namespace on the builder type.
	for _, sp := range bp.Setters {
		if owner, ok := slots[sp.Setter]; ok {
			diags.AddError("setter_conflict",
				fmt.Sprintf("setter %s collides with the builder field of %s", sp.Setter, owner), name, sp.Field.Name)
		}
	}

	if owner, ok := slots[bp.BuildMethod]; ok {
		diags.AddError("setter_conflict",
			fmt.Sprintf("build method %s collides with the builder field of %s", bp.BuildMethod, owner), name, owner)
	}

	return bp
}

// recordMethods returns the names of the methods declared on the record or
// its pointer.
func recordMethods(rec *analyze.Record) map[string]bool {
	names := make(map[string]bool)
	if rec.GoType == nil {
		return names
	}

	ms := types.NewMethodSet(types.NewPointer(rec.GoType))
	for i := range ms.Len() {
		names[ms.At(i).Obj().Name()] = true
	}

	return names
}

// checkFilenames reports two builders of one package writing the same file.
func checkFilenames(p *Plan) {
	seen := make(map[string]string, len(p.Builders))

	for _, bp := range p.Builders {
		key := bp.Record.ID.PkgPath + "/" + bp.Filename
		if other, ok := seen[key]; ok {
			p.Diagnostics.AddError("file_conflict",
				fmt.Sprintf("builders of %s and %s are both written to %s", other, bp.Record.Name(), bp.Filename),
				bp.Record.Name(), "")
		}

		seen[key] = bp.Record.Name()
	}
}

// BuilderName returns the builder type name of a record.
func BuilderName(record string, opts Options) string {
	return record + opts.Suffix
}

// ConstructorName returns the constructor name of a record's builder. The
// constructor is unexported when the record is.
func ConstructorName(rec *analyze.Record, opts Options) string {
	name := opts.ConstructorPrefix + common.UpperFirst(BuilderName(rec.Name(), opts))
	if !rec.Exported {
		return common.LowerFirst(name)
	}

	return name
}

// SetterName returns the setter method name of a field. With an empty prefix
// an exported field's setter carries exactly the field's name.
func SetterName(field string, opts Options) string {
	return opts.SetterPrefix + common.UpperFirst(field)
}

// SlotName returns the builder field name holding a record field's value.
func SlotName(field string) string {
	return common.SafeIdent(common.LowerFirst(field))
}

// Filename returns the generated file name, e.g. "command_builder.go".
func Filename(record string, opts Options) string {
	name := common.SnakeCase(record)
	if opts.Suffix != "" {
		name += "_" + common.SnakeCase(opts.Suffix)
	}

	return name + ".go"
}
