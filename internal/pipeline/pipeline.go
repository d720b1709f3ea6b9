package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"go.uber.org/zap"

	"builder-generator/internal/analyze"
	"builder-generator/internal/config"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
	"builder-generator/internal/match"
	"builder-generator/internal/plan"
)

// Generator is the name searched for in go:generate directives.
const Generator = "builder-generator"

// maxHints bounds the suggestions attached to a type-not-found error.
const maxHints = 3

var (
	// ErrNoTypes is returned when nothing selects a type to generate for.
	ErrNoTypes = errors.New("no types selected")
	// ErrStale is returned by Check when generated files differ from disk.
	ErrStale = errors.New("generated files are out of date")
)

// Request describes one generator invocation.
type Request struct {
	// Dir is the directory package patterns and GoFile are resolved against.
	Dir string
	// Patterns are Go package patterns. Empty means ".".
	Patterns []string
	// BuildFlags are passed through to the go command.
	BuildFlags []string
	// Types names the types to generate builders for.
	Types []string
	// ConfigFile is an optional YAML configuration path.
	ConfigFile string
	// Options override the configured naming options. Empty fields are
	// inherited.
	Options plan.Options
	// GoFile and GoLine locate the go:generate directive ($GOFILE, $GOLINE).
	GoFile string
	GoLine int
	// GenerateComments controls doc comments on generated declarations.
	GenerateComments bool
}

// Result is the output of Run.
type Result struct {
	Plan  *plan.Plan
	Files []gen.GeneratedFile
}

// Run loads the requested packages and renders the builders of the selected
// types. Nothing is written to disk. A selected type that is not a struct
// with named fields fails the run with an error wrapping
// analyze.ErrUnsupportedShape.
func Run(ctx context.Context, req Request, logger *zap.SugaredLogger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	var cfg *config.File

	if req.ConfigFile != "" {
		f, err := config.LoadFile(req.ConfigFile)
		if err != nil {
			return nil, err
		}

		cfg = f
	}

	graph, err := Load(ctx, req)
	if err != nil {
		return nil, err
	}

	reqs, selection, err := selectTypes(graph, req, cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Infow("selected types", "count", len(reqs))

	p, err := plan.NewResolver(graph, logger).Resolve(reqs)
	p.Diagnostics.Merge(selection)

	if err != nil {
		return &Result{Plan: p}, fmt.Errorf("planning builders: %w", err)
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.GenerateComments = req.GenerateComments

	files, err := gen.NewGenerator(genCfg, logger).Generate(p)
	if err != nil {
		return &Result{Plan: p}, err
	}

	return &Result{Plan: p, Files: files}, nil
}

// Load loads the packages of a request into a type graph.
func Load(ctx context.Context, req Request) (*analyze.TypeGraph, error) {
	patterns := req.Patterns
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	a := analyze.NewAnalyzer()
	a.Dir = req.Dir
	a.BuildFlags = req.BuildFlags

	return a.LoadPackages(ctx, patterns...)
}

// selectTypes turns the request into one plan request per selected type.
// The returned diagnostics note types a configuration pattern matched but
// skipped.
func selectTypes(
	graph *analyze.TypeGraph,
	req Request,
	cfg *config.File,
	logger *zap.SugaredLogger,
) ([]plan.Request, diagnostic.Diagnostics, error) {
	var (
		ids   []analyze.TypeID
		diags diagnostic.Diagnostics
		err   error
	)

	switch {
	case len(req.Types) > 0:
		ids, err = selectNamed(graph, req.Types)
	case cfg != nil:
		ids, err = selectConfigured(graph, cfg, &diags)
	case req.GoFile != "":
		ids, err = selectDirective(graph, req)
	default:
		return nil, diags, fmt.Errorf("%w: pass a type name, a config file or run through go generate", ErrNoTypes)
	}

	if err != nil {
		return nil, diags, err
	}

	if len(ids) == 0 {
		return nil, diags, ErrNoTypes
	}

	reqs := make([]plan.Request, 0, len(ids))

	for _, id := range ids {
		opts := plan.DefaultOptions()
		if cfg != nil {
			if opts, err = cfg.OptionsFor(id.Name); err != nil {
				return nil, diags, err
			}
		}

		if err := mergo.Merge(&opts, req.Options, mergo.WithOverride); err != nil {
			return nil, diags, fmt.Errorf("merging options for %s: %w", id, err)
		}

		logger.Debugw("selected type", "type", id.String(), "options", opts)
		reqs = append(reqs, plan.Request{Type: id, Options: opts})
	}

	return reqs, diags, nil
}

// selectNamed finds each name in every loaded package declaring it.
func selectNamed(graph *analyze.TypeGraph, names []string) ([]analyze.TypeID, error) {
	var (
		ids  []analyze.TypeID
		errs []error
	)

	for _, name := range names {
		found := false

		for _, pkgPath := range packagePaths(graph) {
			id := analyze.TypeID{PkgPath: pkgPath, Name: name}
			if graph.GetType(id) != nil {
				ids = append(ids, id)
				found = true
			}
		}

		if !found {
			errs = append(errs, notFound(graph, name))
		}
	}

	return ids, errors.Join(errs...)
}

// selectConfigured selects the types matched by the configuration. Types
// matched only through a glob pattern are skipped when they cannot have a
// builder; naming them literally keeps the shape check fatal.
func selectConfigured(
	graph *analyze.TypeGraph,
	cfg *config.File,
	diags *diagnostic.Diagnostics,
) ([]analyze.TypeID, error) {
	var ids []analyze.TypeID

	for _, pkgPath := range packagePaths(graph) {
		for _, id := range graph.Packages[pkgPath].Types {
			m, err := cfg.Lookup(id.Name)
			if err != nil {
				return nil, err
			}

			if m == nil {
				continue
			}

			if shape := analyze.ClassifyShape(graph.GetType(id)); !m.Literal && !shape.Supported() {
				diags.AddInfo("skipped_shape",
					fmt.Sprintf("matched by a pattern but skipped: %s shape cannot have a builder", shape), id.Name, "")

				continue
			}

			ids = append(ids, id)
		}
	}

	return ids, nil
}

// selectDirective infers the type annotated by the go:generate directive
// that invoked the tool.
func selectDirective(graph *analyze.TypeGraph, req Request) ([]analyze.TypeID, error) {
	filename := req.GoFile
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(req.Dir, filename)
	}

	name, err := analyze.FindTypeAfterDirective(filename, Generator)
	if err != nil && req.GoLine > 0 {
		name, err = analyze.FindTypeAfterLine(filename, req.GoLine)
	}

	if err != nil {
		return nil, fmt.Errorf("inferring type from %s: %w", req.GoFile, err)
	}

	return selectNamed(graph, []string{name})
}

// notFound reports a missing type, with the closest declared names as
// hints.
func notFound(graph *analyze.TypeGraph, name string) error {
	var declared []string
	for id := range graph.Types {
		declared = append(declared, id.Name)
	}

	hints := match.Suggest(name, declared, maxHints)
	if len(hints) == 0 {
		return fmt.Errorf("%w: %s", analyze.ErrTypeNotFound, name)
	}

	return fmt.Errorf("%w: %s (did you mean %s?)", analyze.ErrTypeNotFound, name, strings.Join(hints, ", "))
}

func packagePaths(graph *analyze.TypeGraph) []string {
	paths := make([]string, 0, len(graph.Packages))
	for p := range graph.Packages {
		paths = append(paths, p)
	}

	sort.Strings(paths)

	return paths
}
