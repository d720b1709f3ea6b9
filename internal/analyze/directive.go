package analyze

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strings"
)

// FindTypeAfterDirective returns the first type declared under a doc comment
// carrying a go:generate directive that mentions generator.
func FindTypeAfterDirective(filename, generator string) (string, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing file: %w", err)
	}

	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		if hasDirective(genDecl.Doc, generator) && len(genDecl.Specs) > 0 {
			return genDecl.Specs[0].(*ast.TypeSpec).Name.Name, nil
		}

		// Grouped declarations carry their doc comments on each spec.
		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			if hasDirective(typeSpec.Doc, generator) {
				return typeSpec.Name.Name, nil
			}
		}
	}

	return "", fmt.Errorf("no type found after go:generate %s directive", generator)
}

// FindTypeAfterLine returns the first type declared after the given line.
// go generate reports the directive's line in $GOLINE.
func FindTypeAfterLine(filename string, line int) (string, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return "", fmt.Errorf("parsing file: %w", err)
	}

	for _, decl := range f.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)
			if fset.Position(typeSpec.Pos()).Line > line {
				return typeSpec.Name.Name, nil
			}
		}
	}

	return "", fmt.Errorf("no type found after line %d", line)
}

func hasDirective(doc *ast.CommentGroup, generator string) bool {
	if doc == nil {
		return false
	}

	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, "//go:generate") && strings.Contains(c.Text, generator) {
			return true
		}
	}

	return false
}
