package gen

import (
	"bytes"
	"fmt"
	"go/format"

	"go.uber.org/zap"

	"builder-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// GenerateComments enables doc comments on generated declarations.
	GenerateComments bool
	// DebugUnformatted writes a .unformatted.go sidecar when gofmt rejects
	// the generated code.
	DebugUnformatted bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		GenerateComments: true,
		DebugUnformatted: true,
	}
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
	logger *zap.SugaredLogger
}

// NewGenerator creates a new Generator with the given configuration.
// A nil logger discards output.
func NewGenerator(config GeneratorConfig, logger *zap.SugaredLogger) *Generator {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	return &Generator{config: config, logger: logger}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g., "command_builder.go").
	Filename string
	// Dir is the directory the file belongs in.
	Dir string
	// Record is the name of the record the file builds.
	Record string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per builder of the plan.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(p.Builders))

	for i := range p.Builders {
		bp := &p.Builders[i]

		file, err := g.generateBuilder(bp)
		if err != nil {
			return nil, fmt.Errorf("generating %s for %s: %w", bp.BuilderName, bp.Record.ID, err)
		}

		g.logger.Debugw("generated builder",
			"record", bp.Record.ID.String(),
			"file", file.Filename,
			"bytes", len(file.Content))

		files = append(files, *file)
	}

	return files, nil
}

// generateBuilder renders and formats the file of one builder.
func (g *Generator) generateBuilder(bp *plan.BuilderPlan) (*GeneratedFile, error) {
	data := g.buildTemplateData(bp)

	// The builder refers to the record unqualified and reads unexported
	// fields, so it can only live in the record's own package.
	dir := bp.Record.Dir

	var buf bytes.Buffer
	if err := builderTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.DebugUnformatted {
			_ = writeDebugUnformatted(dir, bp.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return &GeneratedFile{
		Filename: bp.Filename,
		Dir:      dir,
		Record:   bp.Record.Name(),
		Content:  formatted,
	}, nil
}

// buildTemplateData constructs the template data from a builder plan.
func (g *Generator) buildTemplateData(bp *plan.BuilderPlan) *templateData {
	rec := bp.Record

	imports := newImportSet(rec.ID.PkgPath, reservedNames(bp)...)

	data := &templateData{
		PackageName:      rec.PkgName,
		GenerateComments: g.config.GenerateComments,
		OptionalPkg:      imports.add(OptionalPkgPath, "optional"),
		BuilderPkg:       imports.add(BuilderPkgPath, "builder"),
		Record:           rec.Name(),
		Builder:          bp.BuilderName,
		Constructor:      bp.ConstructorName,
		BuildMethod:      bp.BuildMethod,
		Fields:           make([]fieldData, 0, len(bp.Setters)),
	}

	for _, sp := range bp.Setters {
		data.Fields = append(data.Fields, fieldData{
			Name:   sp.Field.Name,
			Slot:   sp.Slot,
			Setter: sp.Setter,
			Type:   imports.typeString(sp.Field.Type),
		})
	}

	data.Imports = imports.sorted()

	return data
}

// reservedNames returns the identifiers import names must avoid: everything
// declared in the record's package, the declarations about to be generated
// and the locals of the generated methods.
func reservedNames(bp *plan.BuilderPlan) []string {
	names := []string{bp.Record.Name(), bp.BuilderName, bp.ConstructorName}
	names = append(names, plan.GeneratedLocals...)

	if pkg := bp.Record.Pkg; pkg != nil {
		names = append(names, pkg.Scope().Names()...)
	}

	return names
}
