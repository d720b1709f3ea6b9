// Package main provides the CLI entrypoint for builder-generator.
//
// builder-generator derives a companion builder type for Go structs:
//   - Loads packages (AST + go/types) and finds the annotated structs
//   - Rejects every type that is not a struct with named fields
//   - Generates one <record>_builder.go file per struct, with an optional
//     slot and a chainable setter per field and a validating Build method
//
// It is meant to run from a go:generate directive placed above the struct:
//
//	//go:generate go run builder-generator/cmd/builder-generator gen
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}
