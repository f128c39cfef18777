package nav

import (
	"fmt"
	"sort"
)

// BoundArguments holds the typed argument values read back from a resolved
// navigation entry. It is read-only.
type BoundArguments[K Key] struct {
	destination string
	values      map[string]Value
}

// Bind reads the declared arguments of d out of entry.
//
// String and int arguments are read with the matching Entry lookup; an
// argument the entry has no value for is bound to null. Arguments of any
// other declared type are always bound to null. A nil entry or destination
// binds nothing.
func Bind[K Key](d *Destination[K], entry Entry) *BoundArguments[K] {
	if d == nil {
		return &BoundArguments[K]{values: map[string]Value{}}
	}

	b := &BoundArguments[K]{
		destination: d.id,
		values:      make(map[string]Value, len(d.args)),
	}
	if entry == nil {
		return b
	}

	for _, arg := range d.args {
		name := arg.Name()
		switch arg.Type {
		case TypeString:
			if s, ok := entry.String(name); ok {
				b.values[name] = String(s)
				continue
			}
		case TypeInt:
			if i, ok := entry.Int(name); ok {
				b.values[name] = Int(i)
				continue
			}
		}
		b.values[name] = Null()
	}

	return b
}

// Value returns the bound value for key and whether key is bound at all.
func (b *BoundArguments[K]) Value(key K) (Value, bool) {
	v, ok := b.values[key.ArgumentKey()]
	return v, ok
}

// GetString returns the string bound to key.
// It fails with ErrKeyNotFound if key is not bound and with ErrNullValue if
// the bound value is null.
func (b *BoundArguments[K]) GetString(key K) (string, error) {
	v, err := b.lookup(key, KindString)
	if err != nil {
		return "", err
	}
	s, _ := v.AsString()
	return s, nil
}

// GetInt returns the integer bound to key, failing like GetString.
func (b *BoundArguments[K]) GetInt(key K) (int, error) {
	v, err := b.lookup(key, KindInt)
	if err != nil {
		return 0, err
	}
	i, _ := v.AsInt()
	return i, nil
}

func (b *BoundArguments[K]) lookup(key K, want Kind) (Value, error) {
	name := key.ArgumentKey()
	v, ok := b.values[name]
	switch {
	case !ok:
		return Value{}, newArgumentError(b.destination, name, ErrKeyNotFound)
	case v.IsNull():
		return Value{}, newArgumentError(b.destination, name, ErrNullValue)
	case v.Kind() != want:
		return Value{}, newArgumentError(b.destination, name,
			fmt.Errorf("%w: bound %s, requested %s", ErrArgumentTypeMismatch, v.Kind(), want))
	}
	return v, nil
}

// Len returns the number of bound arguments.
func (b *BoundArguments[K]) Len() int {
	return len(b.values)
}

// Names returns the bound argument names in sorted order.
func (b *BoundArguments[K]) Names() []string {
	names := make([]string, 0, len(b.values))
	for name := range b.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
