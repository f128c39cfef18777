package nav

import (
	"net/url"
	"strings"
)

// Values maps argument keys to the values a route is built from.
type Values[K Key] map[K]Value

// Route is a serialized navigation target. It is created once per
// navigation and never mutated.
type Route struct {
	destination string
	route       string
}

// Destination returns the identifier of the route's destination.
func (r Route) Destination() string {
	return r.destination
}

// String returns the route string passed to the navigation controller.
func (r Route) String() string {
	return r.route
}

// NewRoute serializes d and values into a route.
//
// Required arguments are appended to the identifier as "/"-separated path
// segments in declaration order; with no required arguments a single "/" is
// appended. Optional arguments follow as "?name=value&..." using the provided
// value or else the declared default. A null optional argument that is
// nullable is left out; if no optional argument produces a pair, the query is
// omitted entirely.
//
// Query names and values are escaped with url.QueryEscape, path segments
// with url.PathEscape.
//
// Values whose keys are not declared on d are ignored.
func NewRoute[K Key](d *Destination[K], values Values[K]) (Route, error) {
	if d == nil {
		return Route{}, newArgumentError("", "", ErrInvalidDestination)
	}

	required, optional := d.partition()

	var b strings.Builder
	b.WriteString(d.id)

	if len(required) == 0 {
		b.WriteString(pathSeparator)
	}
	for _, arg := range required {
		v, ok := values[arg.Key]
		if !ok {
			return Route{}, newArgumentError(d.id, arg.Name(), ErrMissingRequiredArgument)
		}
		if err := arg.check(v); err != nil {
			return Route{}, newArgumentError(d.id, arg.Name(), err)
		}
		b.WriteString(pathSeparator)
		b.WriteString(url.PathEscape(v.String()))
	}

	pairs := make([]string, 0, len(optional))
	for _, arg := range optional {
		v, ok := values[arg.Key]
		if !ok && arg.Default != nil {
			v = *arg.Default
		}
		if err := arg.check(v); err != nil {
			return Route{}, newArgumentError(d.id, arg.Name(), err)
		}
		if v.IsNull() {
			continue
		}
		pairs = append(pairs, url.QueryEscape(arg.Name())+queryAssign+url.QueryEscape(v.String()))
	}
	if len(pairs) > 0 {
		b.WriteString(queryPrefix)
		b.WriteString(strings.Join(pairs, queryParamSeparator))
	}

	return Route{destination: d.id, route: b.String()}, nil
}

// MustRoute is like NewRoute but panics on error.
func MustRoute[K Key](d *Destination[K], values Values[K]) Route {
	r, err := NewRoute(d, values)
	if err != nil {
		panic(err)
	}
	return r
}
