package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"go.uber.org/zap"

	"navroute-generator/internal/common"
	"navroute-generator/internal/schema"
)

const (
	// DefaultRuntimeImport is the import path of the nav runtime.
	DefaultRuntimeImport = "navroute-generator/nav"

	fileSuffix    = "_nav.go"
	indexFilename = "destinations" + fileSuffix
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// RuntimeImport is the import path of the nav runtime package.
	RuntimeImport string
	// GenerateComments enables generation of doc comments.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "navigation",
		OutputDir:        "./navigation",
		RuntimeImport:    DefaultRuntimeImport,
		GenerateComments: true,
	}
}

// Generator generates Go code from destination declarations.
type Generator struct {
	config GeneratorConfig
	format formatter
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.RuntimeImport == "" {
		config.RuntimeImport = DefaultRuntimeImport
	}

	return &Generator{
		config: config,
		format: formatter{qualifier: common.PackageName(config.RuntimeImport)},
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "search_nav.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per destination plus a shared file listing
// all route patterns. Output depends only on the declarations and their
// order. Declarations are expected to be validated.
func (g *Generator) Generate(decls []schema.DestinationDecl) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(decls)+1)
	index := &indexData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
	}

	for i := range decls {
		decl := &decls[i]

		data, err := g.buildTemplateData(decl)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", decl.Label(), err)
		}

		file, err := g.render(destinationTemplate, data.Filename, data)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", decl.Label(), err)
		}

		Logger().Debug("generated destination",
			zap.String("id", decl.ID),
			zap.String("file", file.Filename),
			zap.Int("arguments", len(data.Arguments)))

		files = append(files, *file)
		index.DestVars = append(index.DestVars, data.DestVar)
	}

	if len(decls) > 0 {
		file, err := g.render(indexTemplate, indexFilename, index)
		if err != nil {
			return nil, fmt.Errorf("generating patterns: %w", err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// render executes tmpl and formats the result.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		writeSidecar(g.config.OutputDir, filename, buf.Bytes())

		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: filename,
		Content:  formatted,
	}, nil
}

var destinationTemplate = template.Must(template.New("destination").Parse(`// Code generated by navgen. DO NOT EDIT.
{{- if and .GenerateComments .Source}}
// Source: {{.Source}}
{{- end}}

package {{.PackageName}}

import {{printf "%q" .RuntimeImport}}
{{if .HasArguments}}
{{if .GenerateComments}}// {{.KeyType}} identifies an argument of the {{.ID}} destination.
{{end -}}
type {{.KeyType}} string

{{if .GenerateComments}}// ArgumentKey implements {{.Nav}}.Key.
{{end -}}
func (k {{.KeyType}}) ArgumentKey() string { return string(k) }

const (
{{- range .Arguments}}
	{{.KeyConst}} {{$.KeyType}} = {{.NameLiteral}}
{{- end}}
)

{{if .GenerateComments}}// {{.DestVar}} describes the {{.ID}} destination.
{{end -}}
var {{.DestVar}} = {{.Nav}}.MustDestination({{.IDLiteral}},
{{- range .Arguments}}
	{{$.Nav}}.Argument[{{$.KeyType}}]{Key: {{.KeyConst}}, Type: {{.Type.TypeConst}}
		{{- if .Nullable}}, Nullable: true{{end}}
		{{- if .DefaultExpr}}, Default: {{.DefaultExpr}}{{end}}},
{{- end}}
)

{{if .GenerateComments}}// {{.ArgsType}} holds the arguments of a route to {{.ID}}.
// Optional arguments left nil fall back to their declared default.
{{end -}}
type {{.ArgsType}} struct {
{{- range .Arguments}}
	{{.Field}} {{.FieldType}}
{{- end}}
}

{{if .GenerateComments}}// Route builds the route to {{.ID}}.
{{end -}}
func (a {{.ArgsType}}) Route() ({{.Nav}}.Route, error) {
	values := {{.Nav}}.Values[{{.KeyType}}]{
{{- range .Arguments}}{{if not .Optional}}
		{{.KeyConst}}: {{.Type.Ctor}}(a.{{.Field}}),
{{- end}}{{end}}
{{- if .HasRequired}}
	{{end}}}
{{- range .Arguments}}{{if .Optional}}
	if a.{{.Field}} != nil {
		values[{{.KeyConst}}] = {{.Type.Ctor}}(*a.{{.Field}})
	}
{{- end}}{{end}}

	return {{.Nav}}.NewRoute({{.DestVar}}, values)
}

{{if .GenerateComments}}// {{.BindFunc}} reads the arguments of {{.ID}} from a resolved entry.
{{end -}}
func {{.BindFunc}}(entry {{.Nav}}.Entry) *{{.Nav}}.BoundArguments[{{.KeyType}}] {
	return {{.Nav}}.Bind({{.DestVar}}, entry)
}
{{- else}}
{{if .GenerateComments}}// {{.DestVar}} describes the {{.ID}} destination.
{{end -}}
var {{.DestVar}} = {{.Nav}}.TopLevel({{.IDLiteral}})

{{if .GenerateComments}}// {{.ArgsType}} holds the arguments of a route to {{.ID}}; there are none.
{{end -}}
type {{.ArgsType}} struct{}

{{if .GenerateComments}}// Route builds the route to {{.ID}}.
{{end -}}
func ({{.ArgsType}}) Route() ({{.Nav}}.Route, error) {
	return {{.Nav}}.NewRoute({{.DestVar}}, nil)
}
{{- end}}
`))

var indexTemplate = template.Must(template.New("index").Parse(`// Code generated by navgen. DO NOT EDIT.

package {{.PackageName}}

{{if .GenerateComments}}// Patterns returns the route patterns of all destinations in declaration
// order, ready to be registered with a navigation host.
{{end -}}
func Patterns() []string {
	return []string{
{{- range .DestVars}}
		{{.}}.Pattern(),
{{- end}}
	}
}
`))
