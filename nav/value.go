package nav

import (
	"fmt"
	"strconv"
)

// Value is a navigation argument value: null, or one of the supported
// scalar variants. The zero Value is null.
type Value struct {
	kind Kind
	s    string
	i    int
	b    bool
	f    float64
}

// Null returns the null value.
func Null() Value { return Value{} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns an integer value.
func Int(i int) Value { return Value{kind: KindInt, i: i} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Float returns a floating point value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Default returns a pointer to v, for use as Argument.Default.
func Default(v Value) *Value { return &v }

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the string held by v, if v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsInt returns the integer held by v, if v is an integer.
func (v Value) AsInt() (int, bool) { return v.i, v.kind == KindInt }

// AsBool returns the boolean held by v, if v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsFloat returns the float held by v, if v is a float.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// String formats v the way it appears in a route.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindInt:
		return strconv.Itoa(v.i)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return "null"
	}
}

// Conforms reports whether v may be assigned to an argument of type t.
// Null conforms to every type; nullability is checked separately.
func (v Value) Conforms(t ArgType) bool {
	if v.kind == KindNull || t == TypeUnknown {
		return true
	}
	return v.kind == kindOf(t)
}

// ParseValue parses the textual form of a value of type t, as produced by
// Value.String. Arguments of unknown type are kept as strings.
func ParseValue(t ArgType, raw string) (Value, error) {
	switch t {
	case TypeString, TypeUnknown:
		return String(raw), nil
	case TypeInt:
		i, err := strconv.Atoi(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as %s: %w", raw, t, err)
		}
		return Int(i), nil
	case TypeBool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as %s: %w", raw, t, err)
		}
		return Bool(b), nil
	case TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Value{}, fmt.Errorf("parse %q as %s: %w", raw, t, err)
		}
		return Float(f), nil
	default:
		return Value{}, fmt.Errorf("parse %q: unsupported type %s", raw, t)
	}
}
