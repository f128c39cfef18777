package gen

import (
	"fmt"
	"strconv"

	"navroute-generator/internal/naming"
	"navroute-generator/internal/schema"
)

// templateData holds all data needed for a destination file.
type templateData struct {
	PackageName      string
	Filename         string
	RuntimeImport    string
	Nav              string // qualifier of the runtime package
	GenerateComments bool

	ID        string
	Source    string
	Name      string // Go name prefix
	IDLiteral string
	KeyType   string
	DestVar   string
	ArgsType  string
	BindFunc  string
	Arguments []argumentData
}

// HasArguments reports whether the destination declares arguments.
func (d *templateData) HasArguments() bool {
	return len(d.Arguments) > 0
}

// HasRequired reports whether the destination has path arguments.
func (d *templateData) HasRequired() bool {
	for _, a := range d.Arguments {
		if !a.Optional {
			return true
		}
	}

	return false
}

// argumentData represents a single argument of a destination.
type argumentData struct {
	Name        string // route name
	NameLiteral string
	KeyConst    string
	Field       string
	Type        typeRef
	Nullable    bool
	Optional    bool
	DefaultExpr string // empty when there is no default
}

// FieldType returns the Args struct field type; optional arguments are
// pointers so that nil selects the default.
func (a argumentData) FieldType() string {
	if a.Optional {
		return "*" + a.Type.GoType
	}

	return a.Type.GoType
}

// indexData holds the data for the shared patterns file.
type indexData struct {
	PackageName      string
	GenerateComments bool
	DestVars         []string
}

// buildTemplateData converts a declaration into template data.
func (g *Generator) buildTemplateData(decl *schema.DestinationDecl) (*templateData, error) {
	name := decl.GoName()

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         g.filename(decl),
		RuntimeImport:    g.config.RuntimeImport,
		Nav:              g.format.qualifier,
		GenerateComments: g.config.GenerateComments,
		ID:               decl.ID,
		Source:           decl.Source,
		Name:             name,
		IDLiteral:        strconv.Quote(decl.ID),
		KeyType:          name + "Key",
		DestVar:          name + "Destination",
		ArgsType:         name + "Args",
		BindFunc:         name + "Arguments",
	}

	for i := range decl.Arguments {
		arg := &decl.Arguments[i]

		ref, err := g.format.typeRef(arg.ArgType())
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}

		ad := argumentData{
			Name:        arg.Name,
			NameLiteral: strconv.Quote(arg.Name),
			KeyConst:    data.KeyType + arg.GoName(),
			Field:       arg.GoName(),
			Type:        ref,
			Nullable:    arg.Nullable,
			Optional:    arg.Optional(),
		}

		if arg.Default != nil {
			v, err := arg.Default.Value(arg.ArgType())
			if err != nil {
				return nil, fmt.Errorf("argument %q default: %w", arg.Name, err)
			}

			ad.DefaultExpr = g.format.defaultExpr(v)
		}

		data.Arguments = append(data.Arguments, ad)
	}

	return data, nil
}

func (g *Generator) filename(decl *schema.DestinationDecl) string {
	return naming.Snake(decl.GoName()) + fileSuffix
}
