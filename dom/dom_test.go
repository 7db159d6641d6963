package dom

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcvoid/jsonstream"
)

// intValue builds an Integer Value the way Sink.numberValue does, for
// tests that need one without going through a full decode.
func intValue(n int64) *Value {
	text := fmt.Sprintf("%d", n)
	src := []byte(text)
	start := 0
	sign := true
	if n < 0 {
		sign = false
		start = 1
	}
	return &Value{
		typ:       Integer,
		numberSrc: src,
		number: jsonstream.NumberData{
			Sign:    sign,
			Integer: jsonstream.Range{Start: jsonstream.Position(start), End: jsonstream.Position(len(src))},
		},
	}
}

func TestTypeStrings(t *testing.T) {
	for _, test := range []struct {
		input    Type
		expected string
	}{
		{Null, "<null>"},
		{Array, "<array>"},
		{Object, "<object>"},
		{Boolean, "<boolean>"},
		{Integer, "<integer>"},
		{Number, "<number>"},
		{String, "<string>"},
		{numTypes, "<unknown>"},
		{-1, "<unknown>"},
	} {
		t.Run(fmt.Sprintf("%v", test.input), func(t *testing.T) {
			assert.Equal(t, test.expected, test.input.String())
		})
	}
}

func TestAsNullOnZeroValue(t *testing.T) {
	v := Value{}
	_, err := v.AsNull()
	assert.NoError(t, err)
}

func TestAccessorsRejectWrongType(t *testing.T) {
	v := Value{typ: String, stringValue: "hi"}

	_, err := v.AsNumber()
	assert.ErrorIs(t, err, ErrType)

	_, err = v.AsInteger()
	assert.ErrorIs(t, err, ErrType)

	_, err = v.AsBoolean()
	assert.ErrorIs(t, err, ErrType)

	_, err = v.AsArray()
	assert.ErrorIs(t, err, ErrType)

	_, err = v.AsObject()
	assert.ErrorIs(t, err, ErrType)

	s, err := v.AsString()
	assert.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestAsNumberWidensInteger(t *testing.T) {
	v := intValue(7)
	n, err := v.AsNumber()
	assert.NoError(t, err)
	assert.Equal(t, 7.0, n)
}

func TestAsObjectLastWriteWins(t *testing.T) {
	v := Value{typ: Object, objectValue: []pair{
		{key: "a", val: intValue(1)},
		{key: "a", val: intValue(2)},
	}}
	m, err := v.AsObject()
	assert.NoError(t, err)
	i, _ := m["a"].AsInteger()
	assert.Equal(t, int64(2), i)
}

func TestIndexOutOfRangeReturnsEmptyValue(t *testing.T) {
	v := Value{typ: Array, arrayValue: []*Value{{typ: Null}}}
	assert.Equal(t, typeUnknown, v.Index(5).Type())
	assert.Equal(t, typeUnknown, v.Index(-1).Type())
	assert.Equal(t, Null, v.Index(0).Type())
}

func TestKeyMissReturnsEmptyValue(t *testing.T) {
	v := Value{typ: Object, objectValue: []pair{{key: "a", val: &Value{typ: Boolean, booleanValue: true}}}}
	assert.Equal(t, typeUnknown, v.Key("missing").Type())
	b, _ := v.Key("a").AsBoolean()
	assert.True(t, b)
}

func TestIndexAndKeyOnWrongReceiverType(t *testing.T) {
	v := Value{typ: Null}
	assert.Equal(t, typeUnknown, v.Index(0).Type())
	assert.Equal(t, typeUnknown, v.Key("x").Type())
}

func TestStringRendersDebugView(t *testing.T) {
	v := Value{typ: Array, arrayValue: []*Value{
		intValue(1),
		{typ: String, stringValue: "a"},
		{typ: Boolean, booleanValue: false},
		{typ: Null},
	}}
	assert.Equal(t, `[1, "a", false, null]`, v.String())
}
