package pipeline

import (
	"context"

	"builder-generator/internal/analyze"
	"builder-generator/internal/plan"
)

// TypeSummary describes one named type and whether it can have a builder.
type TypeSummary struct {
	ID    analyze.TypeID
	Kind  analyze.TypeKind
	Shape analyze.Shape
	// Fields lists the fields a builder would set, empty for unsupported
	// shapes.
	Fields []string
	// Builder is the builder type name under default options.
	Builder string
}

// Inspect loads the request's packages and summarizes every named type.
func Inspect(ctx context.Context, req Request) ([]TypeSummary, error) {
	graph, err := Load(ctx, req)
	if err != nil {
		return nil, err
	}

	var out []TypeSummary

	for _, pkgPath := range packagePaths(graph) {
		for _, id := range graph.Packages[pkgPath].Types {
			info := graph.GetType(id)
			summary := TypeSummary{
				ID:    id,
				Kind:  info.Kind,
				Shape: analyze.ClassifyShape(info),
			}

			if rec, err := analyze.ExtractRecord(info); err == nil {
				summary.Builder = plan.BuilderName(rec.Name(), plan.DefaultOptions())

				for _, f := range rec.Fields {
					summary.Fields = append(summary.Fields, f.Name)
				}
			}

			out = append(out, summary)
		}
	}

	return out, nil
}
