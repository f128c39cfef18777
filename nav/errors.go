package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *ArgumentError) by route construction,
// resolution and bound argument lookups.
var (
	// ErrMissingRequiredArgument indicates a required argument has no value.
	ErrMissingRequiredArgument = errors.New("missing required argument")

	// ErrNonNullableNullValue indicates a non-nullable argument was given,
	// or defaulted to, a null value.
	ErrNonNullableNullValue = errors.New("null value for non-nullable argument")

	// ErrKeyNotFound indicates a bound argument lookup for a key that was
	// never declared on the destination.
	ErrKeyNotFound = errors.New("argument key not found")

	// ErrNullValue indicates a bound argument lookup for a declared key whose
	// resolved value is null.
	ErrNullValue = errors.New("argument value is null")

	// ErrArgumentTypeMismatch indicates a value whose kind differs from the
	// argument's declared type.
	ErrArgumentTypeMismatch = errors.New("argument type mismatch")

	ErrDuplicateArgument  = errors.New("duplicate argument")
	ErrInvalidDestination = errors.New("invalid destination")
	ErrRouteMismatch      = errors.New("route does not match destination")
)

// ArgumentError attaches the destination and argument an error refers to.
type ArgumentError struct {
	Destination string // Destination identifier
	Argument    string // Argument name, empty for destination-level errors
	Err         error  // Underlying sentinel, possibly wrapped
}

func (e *ArgumentError) Error() string {
	if e.Argument == "" {
		return fmt.Sprintf("nav: destination %q: %v", e.Destination, e.Err)
	}
	return fmt.Sprintf("nav: destination %q argument %q: %v", e.Destination, e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func newArgumentError(destination, argument string, err error) *ArgumentError {
	return &ArgumentError{Destination: destination, Argument: argument, Err: err}
}

// IsMissingRequiredArgument reports whether err carries ErrMissingRequiredArgument.
func IsMissingRequiredArgument(err error) bool {
	return errors.Is(err, ErrMissingRequiredArgument)
}

// IsNonNullableNullValue reports whether err carries ErrNonNullableNullValue.
func IsNonNullableNullValue(err error) bool {
	return errors.Is(err, ErrNonNullableNullValue)
}
