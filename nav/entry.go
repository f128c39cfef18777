package nav

import (
	"fmt"
	"net/url"
	"strings"
)

// Entry is a resolved navigation entry as provided by the host controller:
// an opaque bag of argument values with typed lookups by name.
type Entry interface {
	String(name string) (string, bool)
	Int(name string) (int, bool)
}

// Bundle is a map-backed Entry.
type Bundle map[string]Value

// String implements Entry.
func (b Bundle) String(name string) (string, bool) {
	v, ok := b[name]
	if !ok {
		return "", false
	}
	return v.AsString()
}

// Int implements Entry.
func (b Bundle) Int(name string) (int, bool) {
	v, ok := b[name]
	if !ok {
		return 0, false
	}
	return v.AsInt()
}

// Resolve parses a route produced by NewRoute for d back into a Bundle,
// the way a host controller matches a route against d.Pattern().
//
// Path segments are assigned to the required arguments in order; query
// parameters to optional arguments by name. Optional arguments missing from
// the query take their non-null default. Values are parsed according to the
// declared argument types.
func Resolve[K Key](d *Destination[K], route string) (Bundle, error) {
	if d == nil {
		return nil, newArgumentError("", "", ErrInvalidDestination)
	}

	path, query, _ := strings.Cut(route, queryPrefix)

	rest, ok := strings.CutPrefix(path, d.id+pathSeparator)
	if !ok {
		return nil, newArgumentError(d.id, "", fmt.Errorf("%w: %q", ErrRouteMismatch, route))
	}

	required, optional := d.partition()
	bundle := make(Bundle, len(d.args))

	var segments []string
	if len(required) > 0 || rest != "" {
		segments = strings.Split(rest, pathSeparator)
	}
	if len(segments) != len(required) {
		return nil, newArgumentError(d.id, "", fmt.Errorf("%w: %q has %d path segments, want %d",
			ErrRouteMismatch, route, len(segments), len(required)))
	}

	for i, arg := range required {
		raw, err := url.PathUnescape(segments[i])
		if err != nil {
			return nil, newArgumentError(d.id, arg.Name(), fmt.Errorf("%w: %w", ErrRouteMismatch, err))
		}
		v, err := ParseValue(arg.Type, raw)
		if err != nil {
			return nil, newArgumentError(d.id, arg.Name(), fmt.Errorf("%w: %w", ErrArgumentTypeMismatch, err))
		}
		bundle[arg.Name()] = v
	}

	params, err := url.ParseQuery(query)
	if err != nil {
		return nil, newArgumentError(d.id, "", fmt.Errorf("%w: %w", ErrRouteMismatch, err))
	}

	known := make(map[string]struct{}, len(optional))
	for _, arg := range optional {
		name := arg.Name()
		known[name] = struct{}{}

		if !params.Has(name) {
			if arg.Default != nil && !arg.Default.IsNull() {
				bundle[name] = *arg.Default
			}
			continue
		}
		v, err := ParseValue(arg.Type, params.Get(name))
		if err != nil {
			return nil, newArgumentError(d.id, name, fmt.Errorf("%w: %w", ErrArgumentTypeMismatch, err))
		}
		bundle[name] = v
	}
	for name := range params {
		if _, ok := known[name]; !ok {
			return nil, newArgumentError(d.id, name, fmt.Errorf("%w: unknown query parameter", ErrRouteMismatch))
		}
	}

	return bundle, nil
}
