package schema

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hclFile represents the top-level structure of an HCL declaration file.
type hclFile struct {
	Version      *string           `hcl:"version,optional"`
	Package      *string           `hcl:"package,optional"`
	Destinations []*hclDestination `hcl:"destination,block"`
}

type hclDestination struct {
	ID        string         `hcl:"id,label"`
	Name      *string        `hcl:"name,optional"`
	Arguments []*hclArgument `hcl:"argument,block"`
}

type hclArgument struct {
	Name     string `hcl:"name,label"`
	Type     string `hcl:"type"`
	Nullable *bool  `hcl:"nullable,optional"`
	// Kept as an attribute so an absent default differs from "default = null".
	Default *hcl.Attribute `hcl:"default,optional"`
}

// LoadHCLFile loads and parses an HCL declaration file from the given path.
func LoadHCLFile(path string, parser *hclparse.Parser) (*File, error) {
	hclF, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	f, err := decodeHCL(hclF)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.setSource(path)

	return f, nil
}

// ParseHCL parses HCL data into a File. filename is only used in messages.
func ParseHCL(data []byte, filename string) (*File, error) {
	hclF, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse declaration HCL: %w", diags)
	}

	return decodeHCL(hclF)
}

func decodeHCL(hclF *hcl.File) (*File, error) {
	var parsed hclFile

	diags := gohcl.DecodeBody(hclF.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode declaration HCL: %w", diags)
	}

	f := &File{}
	if parsed.Version != nil {
		f.Version = *parsed.Version
	}

	if parsed.Package != nil {
		f.Package = *parsed.Package
	}

	for _, pd := range parsed.Destinations {
		d := DestinationDecl{ID: pd.ID}
		if pd.Name != nil {
			d.Name = *pd.Name
		}

		for _, pa := range pd.Arguments {
			a := ArgumentDecl{Name: pa.Name, Type: pa.Type}
			if pa.Nullable != nil {
				a.Nullable = *pa.Nullable
			}

			if pa.Default != nil {
				def, err := decodeHCLDefault(pa.Default)
				if err != nil {
					return nil, fmt.Errorf("destination %q argument %q: %w", pd.ID, pa.Name, err)
				}

				a.Default = def
			}

			d.Arguments = append(d.Arguments, a)
		}

		f.Destinations = append(f.Destinations, d)
	}

	applyDefaults(f)

	return f, nil
}

// decodeHCLDefault evaluates a default attribute. Strings, numbers and bools
// are accepted; they are kept in their textual form like YAML scalars.
func decodeHCLDefault(attr *hcl.Attribute) (*DefaultValue, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating default: %w", diags)
	}

	if val.IsNull() {
		return &DefaultValue{Null: true}, nil
	}

	if !val.Type().IsPrimitiveType() {
		return nil, fmt.Errorf("default must be a string, number or bool, got %s", val.Type().FriendlyName())
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return nil, fmt.Errorf("converting default: %w", err)
	}

	return &DefaultValue{Text: str.AsString()}, nil
}
