package gen

import "text/template"

// templateData holds all data needed for the builder template.
type templateData struct {
	PackageName      string
	Imports          []importSpec
	GenerateComments bool
	// OptionalPkg and BuilderPkg are the names the runtime packages are
	// imported under.
	OptionalPkg string
	BuilderPkg  string
	Record      string
	Builder     string
	Constructor string
	BuildMethod string
	Fields      []fieldData
}

// fieldData describes the slot and setter of one record field.
type fieldData struct {
	Name   string // Record field name
	Slot   string // Builder field name
	Setter string // Setter method name
	Type   string // Field type as written in the record's package
}

var builderTemplate = template.Must(template.New("builder").Parse(`// Code generated by builder-generator. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .GenerateComments}}
// {{.Builder}} collects the fields of {{.Record}} until {{.BuildMethod}} is called.
{{- end}}
type {{.Builder}} struct {
{{range .Fields}}	{{.Slot}} {{$.OptionalPkg}}.Option[{{.Type}}]
{{end}}}
{{if .GenerateComments}}
// {{.Constructor}} returns a {{.Builder}} with every field unset.
{{- end}}
func {{.Constructor}}() *{{.Builder}} {
	return &{{.Builder}}{
{{range .Fields}}		{{.Slot}}: {{$.OptionalPkg}}.None[{{.Type}}](),
{{end}}	}
}
{{range .Fields}}{{if $.GenerateComments}}
// {{.Setter}} sets {{$.Record}}.{{.Name}}.
{{- end}}
func (b *{{$.Builder}}) {{.Setter}}(v {{.Type}}) *{{$.Builder}} {
	b.{{.Slot}} = {{$.OptionalPkg}}.Some(v)
	return b
}
{{end}}{{if .GenerateComments}}
// {{.BuildMethod}} returns the {{.Record}} assembled from the fields set so far.
// If a field was never set it fails with an error naming the first such
// field in declaration order.
{{- end}}
func (b *{{.Builder}}) {{.BuildMethod}}() ({{.Record}}, error) {
	var out {{.Record}}
	var ok bool
{{range .Fields}}
	if out.{{.Name}}, ok = b.{{.Slot}}.Get(); !ok {
		return {{$.Record}}{}, {{$.BuilderPkg}}.NotSet("{{$.Record}}", "{{.Name}}")
	}
{{end}}
	return out, nil
}
`))
