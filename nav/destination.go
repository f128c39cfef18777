package nav

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	pathSeparator       = "/"
	queryPrefix         = "?"
	queryParamSeparator = "&"
	queryAssign         = "="
)

// reservedChars may not appear in destination identifiers or argument names.
const reservedChars = "/?&={}"

// Destination is a navigable endpoint with a declared argument schema.
// It is immutable once created.
type Destination[K Key] struct {
	id   string
	args []Argument[K]
}

// NewDestination creates a destination with the given identifier and
// arguments, in declaration order. Argument names must be unique and
// defaults must conform to their argument's declared type.
func NewDestination[K Key](id string, args ...Argument[K]) (*Destination[K], error) {
	if id == "" {
		return nil, newArgumentError(id, "", fmt.Errorf("%w: empty identifier", ErrInvalidDestination))
	}
	if strings.ContainsAny(id, reservedChars) {
		return nil, newArgumentError(id, "", fmt.Errorf("%w: identifier contains one of %q", ErrInvalidDestination, reservedChars))
	}

	seen := make(map[string]struct{}, len(args))
	for _, arg := range args {
		name := arg.Name()
		if name == "" || strings.ContainsAny(name, reservedChars) {
			return nil, newArgumentError(id, name, fmt.Errorf("%w: invalid argument name", ErrInvalidDestination))
		}
		if _, ok := seen[name]; ok {
			return nil, newArgumentError(id, name, ErrDuplicateArgument)
		}
		seen[name] = struct{}{}

		if arg.Default != nil && !arg.Default.Conforms(arg.Type) {
			return nil, newArgumentError(id, name, fmt.Errorf("%w: default is %s, declared %s",
				ErrArgumentTypeMismatch, arg.Default.Kind(), arg.Type))
		}
	}

	return &Destination[K]{
		id:   id,
		args: append([]Argument[K](nil), args...),
	}, nil
}

// MustDestination is like NewDestination but panics on error.
// It is intended for package-level declarations.
func MustDestination[K Key](id string, args ...Argument[K]) *Destination[K] {
	d, err := NewDestination(id, args...)
	if err != nil {
		panic(err)
	}
	return d
}

// TopLevel creates a destination without arguments.
func TopLevel(id string) *Destination[NoKey] {
	return MustDestination[NoKey](id)
}

// ID returns the destination identifier.
func (d *Destination[K]) ID() string {
	return d.id
}

// Arguments returns a copy of the argument declarations.
func (d *Destination[K]) Arguments() []Argument[K] {
	return append([]Argument[K](nil), d.args...)
}

// Argument returns the declaration for key.
func (d *Destination[K]) Argument(key K) (Argument[K], bool) {
	for _, arg := range d.args {
		if arg.Key == key {
			return arg, true
		}
	}
	return Argument[K]{}, false
}

// partition splits the arguments into required and optional ones,
// keeping declaration order.
func (d *Destination[K]) partition() (required, optional []Argument[K]) {
	for _, arg := range d.args {
		if arg.Optional() {
			optional = append(optional, arg)
		} else {
			required = append(required, arg)
		}
	}
	return required, optional
}

// Pattern returns the route pattern a host controller registers for this
// destination, e.g. "detail/{id}?tab={tab}".
func (d *Destination[K]) Pattern() string {
	required, optional := d.partition()

	var b strings.Builder
	b.WriteString(d.id)
	if len(required) == 0 {
		b.WriteString(pathSeparator)
	}
	for _, arg := range required {
		b.WriteString(pathSeparator)
		b.WriteString("{" + arg.Name() + "}")
	}
	for i, arg := range optional {
		if i == 0 {
			b.WriteString(queryPrefix)
		} else {
			b.WriteString(queryParamSeparator)
		}
		b.WriteString(url.QueryEscape(arg.Name()) + queryAssign + "{" + arg.Name() + "}")
	}
	return b.String()
}

func (d *Destination[K]) String() string {
	return d.Pattern()
}
