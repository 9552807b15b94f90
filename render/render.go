// Package render serializes resolved interface models for downstream
// consumers: ordered YAML export and template-driven model generation.
package render

import (
	"io"
	"io/fs"
	"os"
	"text/template"

	"github.com/golangros/gorosidl/ifc"
	"gopkg.in/yaml.v3"
)

// WriteYAML writes the package model as YAML, fields in declaration order
// and type descriptors in their legacy string form.
func WriteYAML(w io.Writer, pkg *ifc.Package) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(pkg); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// EnsureOutputDir creates the output directory, including parents, if it
// does not exist yet.
func EnsureOutputDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Generator renders resolved models through text templates.
type Generator struct {
	tmpl *template.Template
}

// NewGenerator parses the templates matching the given patterns from the
// filesystem. Templates can call typestring on any ifc.Type and range
// over fieldsets via fields.
func NewGenerator(fsys fs.FS, patterns ...string) (*Generator, error) {
	tmpl, err := template.New("").Funcs(Funcs()).ParseFS(fsys, patterns...)
	if err != nil {
		return nil, err
	}
	return &Generator{tmpl: tmpl}, nil
}

// Render executes the named template with the given data.
func (g *Generator) Render(w io.Writer, name string, data any) error {
	return g.tmpl.ExecuteTemplate(w, name, data)
}

// Funcs returns the template helpers shared by all generator templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"typestring": func(t ifc.Type) string { return t.String() },
		"fields":     func(f *ifc.FieldSet) []ifc.Field { return f.Fields() },
	}
}
