package enum

import (
	"encoding/json"
	"errors"
	"iter"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Definition is the input to New: enumeration keys mapped to their values.
type Definition map[string]Value

// Enumeration is an immutable set of named values built by New or From.
//
// It exposes exactly the keys of the definition it was built from. Reads of
// any other key fail with ErrUnknownKey, and Set and Delete always fail with
// ErrReadOnly. The zero Enumeration and a nil *Enumeration have no keys.
type Enumeration struct {
	values map[string]Value
	keys   []string
}

// New validates def and returns an enumeration holding a private copy of it.
//
// Validation fails with ErrEmptyDefinition when def has no entries (a nil
// Definition is empty), then with ErrInvalidValueType when any value is the
// zero Value. Later changes to def do not affect the returned enumeration.
func New(def Definition) (*Enumeration, error) {
	return build(opNew, def)
}

// From builds an enumeration from untyped input, such as the result of
// decoding a JSON or YAML document.
//
// The input must be a map (or a non-nil pointer to one) whose keys are
// strings; anything else fails with ErrInvalidInputKind. An empty map fails
// with ErrEmptyDefinition. Values may be any Go string, integer or float kind,
// a json.Number, or a Value; anything else fails with ErrInvalidValueType.
func From(input any) (*Enumeration, error) {
	switch in := input.(type) {
	case Definition:
		return build(opFrom, in)
	case map[string]Value:
		return build(opFrom, in)
	}

	rv := reflect.ValueOf(input)
	if rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, newInvalidInputKindError(opFrom)
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, newInvalidInputKindError(opFrom)
	}

	keyKind := rv.Type().Key().Kind()
	if keyKind != reflect.String && keyKind != reflect.Interface {
		return nil, newInvalidInputKindError(opFrom)
	}

	def := make(Definition, rv.Len())
	entries := rv.MapRange()
	for entries.Next() {
		k := entries.Key()
		if keyKind == reflect.Interface {
			if k.IsNil() {
				return nil, newInvalidInputKindError(opFrom)
			}
			k = k.Elem()
			if k.Kind() != reflect.String {
				return nil, newInvalidInputKindError(opFrom)
			}
		}
		// Unsupported values are kept as the zero Value and rejected by build.
		def[k.String()] = valueOf(entries.Value())
	}

	return build(opFrom, def)
}

// Must panics if err is non-nil. It is meant for package-level enumerations:
//
//	var Colors = enum.Must(enum.New(enum.Definition{"RED": enum.Text("red")}))
func Must(e *Enumeration, err error) *Enumeration {
	if err != nil {
		panic(err)
	}
	return e
}

func build(op string, def Definition) (*Enumeration, error) {
	if len(def) == 0 {
		return nil, newEmptyDefinitionError(op)
	}

	keys := slices.Sorted(maps.Keys(def))
	for _, key := range keys {
		if def[key].typ == TypeInvalid {
			return nil, newInvalidValueTypeError(op, key)
		}
	}

	return &Enumeration{
		values: maps.Clone(map[string]Value(def)),
		keys:   keys,
	}, nil
}

func valueOf(rv reflect.Value) Value {
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Value{}
		}
		rv = rv.Elem()
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Value:
			return x
		case json.Number:
			if n, err := x.Int64(); err == nil {
				return Int(n)
			}
			// Out-of-range numbers parse to ±Inf alongside ErrRange.
			if f, err := x.Float64(); err == nil || errors.Is(err, strconv.ErrRange) {
				return Float(f)
			}
			return Value{}
		}
	}

	switch rv.Kind() {
	case reflect.String:
		return Text(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Float(float64(u))
		}
		return Int(int64(u))
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float())
	default:
		return Value{}
	}
}

// Get returns the value for key, or an ErrUnknownKey error naming key.
func (e *Enumeration) Get(key string) (Value, error) {
	if e == nil {
		return Value{}, newUnknownKeyError(key)
	}
	if v, ok := e.values[key]; ok {
		return v, nil
	}
	return Value{}, newUnknownKeyError(key)
}

// MustGet returns the value for key and panics with the ErrUnknownKey error
// if the key does not exist.
func (e *Enumeration) MustGet(key string) Value {
	v, err := e.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Set always fails with an ErrReadOnly error naming key, whether or not key
// exists. The enumeration is left unchanged.
func (e *Enumeration) Set(key string, _ Value) error {
	return newReadOnlyError(opSet, key)
}

// Delete always fails with an ErrReadOnly error naming key.
func (e *Enumeration) Delete(key string) error {
	return newReadOnlyError(opDelete, key)
}

// Has reports whether key is defined.
func (e *Enumeration) Has(key string) bool {
	if e == nil {
		return false
	}
	_, ok := e.values[key]
	return ok
}

// Len returns the number of keys.
func (e *Enumeration) Len() int {
	if e == nil {
		return 0
	}
	return len(e.keys)
}

// Keys returns the defined keys in sorted order. The slice is a copy.
func (e *Enumeration) Keys() []string {
	if e == nil {
		return nil
	}
	return slices.Clone(e.keys)
}

// All iterates over the key/value pairs in sorted key order.
func (e *Enumeration) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if e == nil {
			return
		}
		for _, key := range e.keys {
			if !yield(key, e.values[key]) {
				return
			}
		}
	}
}

// Equal reports whether e and other define the same keys with equal values.
func (e *Enumeration) Equal(other *Enumeration) bool {
	if e == nil || other == nil {
		return e == other
	}
	return maps.EqualFunc(e.values, other.values, Value.Equal)
}

// String formats the enumeration as {KEY: value, ...} in sorted key order.
func (e *Enumeration) String() string {
	if e == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, key := range e.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(e.values[key].String())
	}
	b.WriteByte('}')
	return b.String()
}
