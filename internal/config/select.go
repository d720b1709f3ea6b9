package config

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/bmatcuk/doublestar/v4"

	"builder-generator/internal/plan"
)

// Match is the result of matching a type name against the configuration.
type Match struct {
	Options plan.Options
	// Literal is true when the type was named exactly rather than through
	// a glob pattern.
	Literal bool
}

// Lookup returns the options of the first selection matching typeName, or
// nil when none matches. The returned options have defaults applied.
func (f *File) Lookup(typeName string) (*Match, error) {
	for i := range f.Builders {
		target := &f.Builders[i]

		for _, pattern := range target.Types {
			ok, _ := doublestar.Match(pattern, typeName)
			if !ok {
				continue
			}

			opts, err := f.resolve(target.BuilderOptions)
			if err != nil {
				return nil, fmt.Errorf("options for %s: %w", typeName, err)
			}

			return &Match{Options: opts, Literal: pattern == typeName}, nil
		}
	}

	return nil, nil
}

// OptionsFor returns the options for typeName: those of its selection when
// one matches, otherwise the file defaults.
func (f *File) OptionsFor(typeName string) (plan.Options, error) {
	m, err := f.Lookup(typeName)
	if err != nil {
		return plan.Options{}, err
	}

	if m != nil {
		return m.Options, nil
	}

	return f.resolve(BuilderOptions{})
}

// resolve layers a selection's options over the file defaults and the
// built-in defaults.
func (f *File) resolve(opts BuilderOptions) (plan.Options, error) {
	merged := opts
	if err := mergo.Merge(&merged, f.Defaults); err != nil {
		return plan.Options{}, fmt.Errorf("merging defaults: %w", err)
	}

	out := merged.toPlan()
	if err := mergo.Merge(&out, plan.DefaultOptions()); err != nil {
		return plan.Options{}, fmt.Errorf("merging built-in defaults: %w", err)
	}

	return out, nil
}

func (o BuilderOptions) toPlan() plan.Options {
	return plan.Options{
		Suffix:            o.Suffix,
		ConstructorPrefix: o.ConstructorPrefix,
		SetterPrefix:      o.SetterPrefix,
		BuildMethod:       o.BuildMethod,
	}
}

// FromPlan converts naming options to their configuration form.
func FromPlan(o plan.Options) BuilderOptions {
	return BuilderOptions{
		Suffix:            o.Suffix,
		ConstructorPrefix: o.ConstructorPrefix,
		SetterPrefix:      o.SetterPrefix,
		BuildMethod:       o.BuildMethod,
	}
}
