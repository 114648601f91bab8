package enum

import (
	"math"
	"strconv"
)

// ValueType identifies which variant a Value holds.
type ValueType int

const (
	// TypeInvalid is the type of the zero Value. It is never accepted in a
	// definition.
	TypeInvalid ValueType = iota

	// TypeText is a string value.
	TypeText

	// TypeNumber is an integral or floating point value.
	TypeNumber
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeNumber:
		return "number"
	default:
		return "invalid"
	}
}

// Value is a single enumeration value: either text or a number.
// Integral numbers are kept as int64 so they round-trip exactly.
type Value struct {
	typ     ValueType
	text    string
	integer int64
	float   float64
	isInt   bool
}

// Text returns a text value.
func Text(s string) Value {
	return Value{typ: TypeText, text: s}
}

// Int returns an integral number value.
func Int(n int64) Value {
	return Value{typ: TypeNumber, integer: n, isInt: true}
}

// Float returns a floating point number value.
func Float(f float64) Value {
	return Value{typ: TypeNumber, float: f}
}

// Type returns the variant held by v.
func (v Value) Type() ValueType {
	return v.typ
}

// IsText reports whether v holds text.
func (v Value) IsText() bool {
	return v.typ == TypeText
}

// IsNumber reports whether v holds a number.
func (v Value) IsNumber() bool {
	return v.typ == TypeNumber
}

// AsText returns the text held by v.
func (v Value) AsText() (string, bool) {
	if v.typ != TypeText {
		return "", false
	}
	return v.text, true
}

// AsInt returns the integer held by v. It reports false for text and for
// numbers built with Float.
func (v Value) AsInt() (int64, bool) {
	if v.typ != TypeNumber || !v.isInt {
		return 0, false
	}
	return v.integer, true
}

// AsFloat returns the number held by v as a float64. Integral numbers are
// converted.
func (v Value) AsFloat() (float64, bool) {
	if v.typ != TypeNumber {
		return 0, false
	}
	if v.isInt {
		return float64(v.integer), true
	}
	return v.float, true
}

// Interface returns the underlying Go value: string, int64, float64, or nil
// for the zero Value.
func (v Value) Interface() any {
	switch {
	case v.typ == TypeText:
		return v.text
	case v.typ == TypeNumber && v.isInt:
		return v.integer
	case v.typ == TypeNumber:
		return v.float
	default:
		return nil
	}
}

// String formats the value for display. Text is returned as is.
func (v Value) String() string {
	switch {
	case v.typ == TypeText:
		return v.text
	case v.typ == TypeNumber && v.isInt:
		return strconv.FormatInt(v.integer, 10)
	case v.typ == TypeNumber:
		return strconv.FormatFloat(v.float, 'g', -1, 64)
	default:
		return "<invalid>"
	}
}

// Equal reports whether v and other hold the same variant and value.
// Int(1) and Float(1) are different values. NaN equals NaN.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ || v.isInt != other.isInt {
		return false
	}
	switch {
	case v.typ == TypeText:
		return v.text == other.text
	case v.typ == TypeNumber && v.isInt:
		return v.integer == other.integer
	case v.typ == TypeNumber:
		return v.float == other.float || (math.IsNaN(v.float) && math.IsNaN(other.float))
	default:
		return true
	}
}
