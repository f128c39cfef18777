package analyze

import (
	"go/ast"
	"strings"
)

// DirectivePrefix marks a struct type as a destination.
const DirectivePrefix = "//navgen:destination"

// directive holds the parsed key=value pairs of a destination directive.
type directive struct {
	ID      string
	Name    string
	Unknown []string // keys that are not understood
}

// findDirective returns the destination directive in the given comment
// groups, checked in order.
func findDirective(groups ...*ast.CommentGroup) (*directive, bool) {
	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			rest, ok := strings.CutPrefix(c.Text, DirectivePrefix)
			if !ok {
				continue
			}

			if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
				continue
			}

			return parseDirective(rest), true
		}
	}

	return nil, false
}

func parseDirective(s string) *directive {
	d := &directive{}

	for _, field := range strings.Fields(s) {
		key, value, _ := strings.Cut(field, "=")
		switch key {
		case "id":
			d.ID = value
		case "name":
			d.Name = value
		default:
			d.Unknown = append(d.Unknown, key)
		}
	}

	return d
}

// fieldTag is the parsed nav struct tag of a field.
type fieldTag struct {
	Name    string
	Skip    bool
	Default *string
}

// parseFieldTag parses `nav:"name,default=value"`. Everything after
// "default=" belongs to the value, commas included.
func parseFieldTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{Skip: true}
	}

	name, rest, _ := strings.Cut(tag, ",")
	ft := fieldTag{Name: name}

	if def, ok := strings.CutPrefix(rest, "default="); ok {
		ft.Default = &def
	}

	return ft
}
