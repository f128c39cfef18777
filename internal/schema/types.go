package schema

import (
	"fmt"

	"navroute-generator/internal/naming"
	"navroute-generator/nav"
)

// CurrentVersion is the declaration file version this package understands.
const CurrentVersion = "1"

// File is a set of destination declarations.
type File struct {
	Version      string            `yaml:"version"`
	Package      string            `yaml:"package,omitempty"`
	Destinations []DestinationDecl `yaml:"destinations"`
}

// DestinationDecl declares one destination.
type DestinationDecl struct {
	// ID is the destination identifier used in routes.
	ID string `yaml:"id"`
	// Name is the Go name prefix for generated identifiers.
	// Derived from ID when empty.
	Name string `yaml:"name,omitempty"`
	// Arguments in declaration order.
	Arguments []ArgumentDecl `yaml:"arguments,omitempty"`
	// Source records where the declaration came from, for diagnostics.
	Source string `yaml:"-"`
}

// GoName returns the Go name prefix of the destination.
func (d *DestinationDecl) GoName() string {
	if d.Name != "" {
		return d.Name
	}

	return naming.Pascal(d.ID)
}

// Label identifies the destination in diagnostics.
func (d *DestinationDecl) Label() string {
	if d.Source == "" {
		return d.ID
	}

	return d.ID + " (" + d.Source + ")"
}

// ArgumentDecl declares one argument of a destination.
type ArgumentDecl struct {
	Name     string        `yaml:"name"`
	Type     string        `yaml:"type"`
	Nullable bool          `yaml:"nullable,omitempty"`
	Default  *DefaultValue `yaml:"-"`
}

// GoName returns the Go field name of the argument.
func (a *ArgumentDecl) GoName() string {
	return naming.Pascal(a.Name)
}

// ArgType returns the declared type, or nav.TypeUnknown.
func (a *ArgumentDecl) ArgType() nav.ArgType {
	t, _ := nav.ParseArgType(a.Type)
	return t
}

// Optional reports whether the argument is serialized as a query parameter.
func (a *ArgumentDecl) Optional() bool {
	return a.Default != nil || a.Nullable
}

// DefaultValue is the declared default of an argument.
type DefaultValue struct {
	// Null marks an explicit null default.
	Null bool
	// Text is the literal, parsed according to the argument type.
	Text string
}

// Value parses the default for an argument of type t.
func (v *DefaultValue) Value(t nav.ArgType) (nav.Value, error) {
	if v.Null {
		return nav.Null(), nil
	}

	return nav.ParseValue(t, v.Text)
}

// Destination builds the runtime descriptor of the declaration, keyed by
// argument name.
func (d *DestinationDecl) Destination() (*nav.Destination[nav.NoKey], error) {
	args := make([]nav.Argument[nav.NoKey], 0, len(d.Arguments))

	for i := range d.Arguments {
		a := &d.Arguments[i]
		arg := nav.Argument[nav.NoKey]{
			Key:      nav.NoKey(a.Name),
			Type:     a.ArgType(),
			Nullable: a.Nullable,
		}

		if a.Default != nil {
			v, err := a.Default.Value(arg.Type)
			if err != nil {
				return nil, fmt.Errorf("argument %q default: %w", a.Name, err)
			}

			arg.Default = nav.Default(v)
		}

		args = append(args, arg)
	}

	return nav.NewDestination(d.ID, args...)
}
