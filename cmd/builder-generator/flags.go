package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"builder-generator/internal/pipeline"
)

// selectionFlags are the flags shared by gen and check.
type selectionFlags struct {
	types             []string
	patterns          []string
	configFile        string
	suffix            string
	constructorPrefix string
	setterPrefix      string
	buildMethod       string
	noComments        bool
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringSliceVarP(&f.types, "type", "t", nil, "Type names to generate builders for (repeatable or comma separated)")
	flags.StringSliceVar(&f.patterns, "pkg", []string{"."}, "Package patterns to load")
	flags.StringVar(&f.configFile, "config", "", "Path to a builders.yaml configuration file")
	flags.StringVar(&f.suffix, "suffix", "", "Builder type name suffix (default \"Builder\")")
	flags.StringVar(&f.constructorPrefix, "constructor-prefix", "", "Constructor name prefix (default \"New\")")
	flags.StringVar(&f.setterPrefix, "setter-prefix", "", "Setter name prefix (default none)")
	flags.StringVar(&f.buildMethod, "build-method", "", "Name of the validating build method (default \"Build\")")
	flags.BoolVar(&f.noComments, "no-comments", false, "Omit doc comments from generated code")
}

// request builds a pipeline request from the flags and the go generate
// environment.
func (f *selectionFlags) request() pipeline.Request {
	req := pipeline.Request{
		Patterns:         f.patterns,
		Types:            f.types,
		ConfigFile:       f.configFile,
		GenerateComments: !f.noComments,
	}

	req.Options.Suffix = f.suffix
	req.Options.ConstructorPrefix = f.constructorPrefix
	req.Options.SetterPrefix = f.setterPrefix
	req.Options.BuildMethod = f.buildMethod

	// Set by go generate.
	req.GoFile = os.Getenv("GOFILE")
	if line, err := strconv.Atoi(os.Getenv("GOLINE")); err == nil {
		req.GoLine = line
	}

	return req
}
