package nav

import "fmt"

// Key is implemented by the typed argument keys of a destination.
// ArgumentKey returns the name the argument uses inside routes.
//
// Applications usually declare one string-based key type per destination:
//
//	type DetailKey string
//
//	func (k DetailKey) ArgumentKey() string { return string(k) }
type Key interface {
	comparable
	ArgumentKey() string
}

// NoKey is the key type of destinations that take no arguments.
type NoKey string

// ArgumentKey implements Key.
func (k NoKey) ArgumentKey() string { return string(k) }

// Argument declares one argument of a destination.
type Argument[K Key] struct {
	Key      K       // Typed key; its ArgumentKey is the route name
	Type     ArgType // Declared type
	Nullable bool    // Whether null is an accepted value
	Default  *Value  // Default value; nil means no default, Null() an explicit null default
}

// Name returns the argument's route name.
func (a Argument[K]) Name() string {
	return a.Key.ArgumentKey()
}

// HasDefault reports whether the argument declares a default value.
func (a Argument[K]) HasDefault() bool {
	return a.Default != nil
}

// Optional reports whether the argument may be omitted from a route.
// Optional arguments are serialized as query parameters, required ones as
// path segments.
func (a Argument[K]) Optional() bool {
	return a.HasDefault() || a.Nullable
}

// check validates a resolved value against the declaration.
func (a Argument[K]) check(v Value) error {
	if !v.Conforms(a.Type) {
		return fmt.Errorf("%w: got %s, declared %s", ErrArgumentTypeMismatch, v.Kind(), a.Type)
	}
	if v.IsNull() && !a.Nullable {
		return ErrNonNullableNullValue
	}
	return nil
}
