package schema

import (
	"fmt"
	"go/token"
	"math"
	"strings"

	"navroute-generator/internal/diagnostic"
	"navroute-generator/internal/naming"
	"navroute-generator/nav"
)

// reservedChars may not appear in destination identifiers or argument names.
const reservedChars = "/?&={}"

// suggestDistance bounds the edit distance of "did you mean" suggestions.
const suggestDistance = 2

// reservedFieldNames would collide with the methods of generated Args types.
var reservedFieldNames = map[string]bool{"Route": true}

// Validate checks declarations for problems that would make the generated
// code fail to compile or the routes fail at runtime.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported declaration version %q", f.Version), "", "")
	}

	if f.Package != "" && !token.IsIdentifier(f.Package) {
		res.AddError("invalid_package", fmt.Sprintf("package name %q is not a Go identifier", f.Package), "", "")
	}

	seenIDs := map[string]string{}
	seenNames := map[string]string{}

	for i := range f.Destinations {
		d := &f.Destinations[i]
		label := d.Label()

		if d.ID == "" {
			res.AddError("missing_destination_id", "destination has no id", label, "")
			continue
		}

		if strings.ContainsAny(d.ID, reservedChars) {
			res.AddError("invalid_destination_id",
				fmt.Sprintf("id %q contains one of %q", d.ID, reservedChars), label, "")
		}

		if prev, ok := seenIDs[d.ID]; ok {
			res.AddError("duplicate_destination", fmt.Sprintf("id %q already declared by %s", d.ID, prev), label, "")
		} else {
			seenIDs[d.ID] = label
		}

		goName := d.GoName()
		if !token.IsIdentifier(goName) || !token.IsExported(goName) {
			res.AddError("invalid_destination_name",
				fmt.Sprintf("Go name %q is not an exported identifier; set name explicitly", goName), label, "")
		} else if prev, ok := seenNames[goName]; ok {
			res.AddError("duplicate_destination_name",
				fmt.Sprintf("Go name %q already used by %s", goName, prev), label, "")
		} else {
			seenNames[goName] = label
		}

		if len(d.Arguments) == 0 {
			res.AddInfo("no_arguments", "destination has no arguments", label, "")
		}

		validateArguments(res, d)
	}

	return res
}

func validateArguments(res *diagnostic.Diagnostics, d *DestinationDecl) {
	label := d.Label()
	seenArgs := map[string]struct{}{}
	seenFields := map[string]string{}

	for i := range d.Arguments {
		a := &d.Arguments[i]

		if a.Name == "" || strings.ContainsAny(a.Name, reservedChars) {
			res.AddError("invalid_argument_name", fmt.Sprintf("invalid argument name %q", a.Name), label, a.Name)
			continue
		}

		if _, ok := seenArgs[a.Name]; ok {
			res.AddError("duplicate_argument", fmt.Sprintf("argument %q declared twice", a.Name), label, a.Name)
			continue
		}

		seenArgs[a.Name] = struct{}{}

		field := a.GoName()
		switch {
		case !token.IsIdentifier(field) || !token.IsExported(field):
			res.AddError("invalid_argument_field",
				fmt.Sprintf("Go field name %q is not an exported identifier", field), label, a.Name)
		case reservedFieldNames[field]:
			res.AddError("reserved_argument_field", fmt.Sprintf("Go field name %q is reserved", field), label, a.Name)
		default:
			if prev, ok := seenFields[field]; ok {
				res.AddError("duplicate_argument_field",
					fmt.Sprintf("Go field name %q already used by argument %q", field, prev), label, a.Name)
			}

			seenFields[field] = a.Name
		}

		typ, ok := nav.ParseArgType(a.Type)
		if !ok {
			res.AddError("unknown_argument_type", fmt.Sprintf("unknown type %q", a.Type), label, a.Name,
				naming.Suggest(a.Type, nav.ArgTypeNames(), suggestDistance)...)

			continue
		}

		validateDefault(res, label, a, typ)
	}
}

func validateDefault(res *diagnostic.Diagnostics, label string, a *ArgumentDecl, typ nav.ArgType) {
	if a.Default == nil {
		return
	}

	if a.Default.Null {
		if !a.Nullable {
			res.AddError("null_default_not_nullable",
				"null default on a non-nullable argument fails every route that omits it", label, a.Name)
		}

		return
	}

	v, err := a.Default.Value(typ)
	if err != nil {
		res.AddError("invalid_default", fmt.Sprintf("default %q is not a valid %s", a.Default.Text, typ), label, a.Name)
		return
	}

	if f, ok := v.AsFloat(); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		res.AddError("invalid_default", fmt.Sprintf("default %q is not a finite float", a.Default.Text), label, a.Name)
	}
}
