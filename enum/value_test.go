package enum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueAccessors(t *testing.T) {
	tests := []struct {
		name      string
		value     Value
		wantType  ValueType
		wantIface any
		wantStr   string
	}{
		{
			name:      "text",
			value:     Text("red"),
			wantType:  TypeText,
			wantIface: "red",
			wantStr:   "red",
		},
		{
			name:      "empty text is still text",
			value:     Text(""),
			wantType:  TypeText,
			wantIface: "",
			wantStr:   "",
		},
		{
			name:      "int",
			value:     Int(42),
			wantType:  TypeNumber,
			wantIface: int64(42),
			wantStr:   "42",
		},
		{
			name:      "float",
			value:     Float(2.5),
			wantType:  TypeNumber,
			wantIface: 2.5,
			wantStr:   "2.5",
		},
		{
			name:      "zero value",
			value:     Value{},
			wantType:  TypeInvalid,
			wantIface: nil,
			wantStr:   "<invalid>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.value.Type())
			assert.Equal(t, tt.wantIface, tt.value.Interface())
			assert.Equal(t, tt.wantStr, tt.value.String())
			assert.Equal(t, tt.wantType == TypeText, tt.value.IsText())
			assert.Equal(t, tt.wantType == TypeNumber, tt.value.IsNumber())
		})
	}
}

func TestValueConversions(t *testing.T) {
	s, ok := Text("red").AsText()
	assert.True(t, ok)
	assert.Equal(t, "red", s)

	_, ok = Text("1").AsInt()
	assert.False(t, ok, "text must not convert to a number")

	_, ok = Int(1).AsText()
	assert.False(t, ok)

	n, ok := Int(7).AsInt()
	assert.True(t, ok)
	assert.Equal(t, int64(7), n)

	f, ok := Int(7).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 7.0, f)

	_, ok = Float(7).AsInt()
	assert.False(t, ok, "floats are not reported as integers")

	f, ok = Float(0.25).AsFloat()
	assert.True(t, ok)
	assert.Equal(t, 0.25, f)

	_, ok = Value{}.AsFloat()
	assert.False(t, ok)
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same text", Text("a"), Text("a"), true},
		{"different text", Text("a"), Text("b"), false},
		{"same int", Int(1), Int(1), true},
		{"int and float differ", Int(1), Float(1), false},
		{"text and number differ", Text("1"), Int(1), false},
		{"same float", Float(1.5), Float(1.5), true},
		{"nan equals nan", Float(math.NaN()), Float(math.NaN()), true},
		{"zero values", Value{}, Value{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueTypeString(t *testing.T) {
	assert.Equal(t, "text", TypeText.String())
	assert.Equal(t, "number", TypeNumber.String())
	assert.Equal(t, "invalid", TypeInvalid.String())
}
