package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"builder-generator/internal/analyze"
	"builder-generator/internal/diagnostic"
	"builder-generator/internal/gen"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
	okColor      = color.New(color.FgGreen)
)

// printDiagnostics writes errors, then warnings, then infos, one per line.
func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		fmt.Fprintf(w, "%s %s\n", severityLabel(diag.Severity), diag)
	}
}

func severityLabel(s diagnostic.DiagnosticSeverity) string {
	label := s.String() + ":"

	switch s {
	case diagnostic.DiagnosticError:
		return errorColor.Sprint(label)
	case diagnostic.DiagnosticWarning:
		return warningColor.Sprint(label)
	default:
		return infoColor.Sprint(label)
	}
}

func statusLabel(s gen.FileStatus) string {
	if s == gen.StatusUpToDate {
		return okColor.Sprint(s)
	}

	return errorColor.Sprint(s)
}

func shapeLabel(s analyze.Shape) string {
	if s.Supported() {
		return okColor.Sprint(s)
	}

	return s.String()
}
