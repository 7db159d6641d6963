// Package dom builds an in-memory tree out of the events reported by
// the engine package's decoder, the way a host program that just wants
// a plain value would use it.
package dom

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mcvoid/jsonstream"
)

// ErrType is returned by the AsXxx accessors when a Value is asked for
// a type it isn't.
var ErrType = errors.New("dom: type error")

// Type is the kind of JSON value a Value holds.
type Type int

const (
	Null Type = iota
	Number
	Integer
	String
	Boolean
	Array
	Object
	numTypes
	typeUnknown Type = -1
)

var typeStrings = [numTypes]string{
	"<null>",
	"<number>",
	"<integer>",
	"<string>",
	"<boolean>",
	"<array>",
	"<object>",
}

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "<unknown>"
	}
	return typeStrings[t]
}

// Value is a decoded JSON value. The zero Value is Null.
//
// A Number or Integer Value holds its source byte ranges rather than an
// already-parsed float64/int64: the engine reports a number's sign,
// integer, decimal and exponent spans without ever converting them, and
// a Value keeps that structure intact, resolving it against numberSrc
// only when AsNumber, AsInteger or String is actually called.
type Value struct {
	typ          Type
	number       jsonstream.NumberData
	numberSrc    []byte
	stringValue  string
	booleanValue bool
	arrayValue   []*Value
	objectValue  []pair
}

type pair struct {
	key string
	val *Value
}

// numberText resolves the value's number spans against numberSrc into
// the literal digits the source document used, including the leading
// '-' the engine represents as Sign: false rather than as its own span.
func (v *Value) numberText() string {
	d := v.number
	var buf []byte
	if !d.Sign {
		buf = append(buf, '-')
	}
	buf = append(buf, v.numberSrc[d.Integer.Start:d.Integer.End]...)
	if d.Decimal != nil {
		buf = append(buf, '.')
		buf = append(buf, v.numberSrc[d.Decimal.Start:d.Decimal.End]...)
	}
	if d.Exponent != nil {
		buf = append(buf, 'e')
		if !d.ExponentSign {
			buf = append(buf, '-')
		}
		buf = append(buf, v.numberSrc[d.Exponent.Start:d.Exponent.End]...)
	}
	return string(buf)
}

// Type reports the kind of value held.
func (v *Value) Type() Type {
	if v.typ >= 0 && v.typ < numTypes {
		return v.typ
	}
	return typeUnknown
}

// AsNull returns nil if the value is JSON null, ErrType otherwise.
func (v *Value) AsNull() (struct{}, error) {
	if v.typ == Null {
		return struct{}{}, nil
	}
	return struct{}{}, fmt.Errorf("%w: value not null: %v", ErrType, v)
}

// AsNumber returns the value as a float64. Integers are widened.
// Returns ErrType for anything that isn't Number or Integer.
func (v *Value) AsNumber() (float64, error) {
	switch v.typ {
	case Integer, Number:
		f, err := strconv.ParseFloat(v.numberText(), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrType, err)
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: value not a number: %v", ErrType, v)
}

// AsInteger returns the value as an int64. It does not truncate a
// decimal number; use AsNumber for that. Returns ErrType otherwise.
func (v *Value) AsInteger() (int64, error) {
	if v.typ != Integer {
		return 0, fmt.Errorf("%w: value not an integer: %v", ErrType, v)
	}
	i, err := strconv.ParseInt(v.numberText(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrType, err)
	}
	return i, nil
}

// AsString returns the value as a string, or ErrType.
func (v *Value) AsString() (string, error) {
	if v.typ == String {
		return v.stringValue, nil
	}
	return "", fmt.Errorf("%w: value not a string: %v", ErrType, v)
}

// AsBoolean returns the value as a bool, or ErrType.
func (v *Value) AsBoolean() (bool, error) {
	if v.typ == Boolean {
		return v.booleanValue, nil
	}
	return false, fmt.Errorf("%w: value not a boolean: %v", ErrType, v)
}

// AsArray returns the value's elements, or ErrType.
func (v *Value) AsArray() ([]*Value, error) {
	if v.typ == Array {
		return v.arrayValue, nil
	}
	return nil, fmt.Errorf("%w: value not an array: %v", ErrType, v)
}

// AsObject returns the value's fields as a map. Duplicate keys keep the
// last value seen. Returns ErrType otherwise.
func (v *Value) AsObject() (map[string]*Value, error) {
	if v.typ != Object {
		return nil, fmt.Errorf("%w: value not an object: %v", ErrType, v)
	}
	m := make(map[string]*Value, len(v.objectValue))
	for _, p := range v.objectValue {
		m[p.key] = p.val
	}
	return m, nil
}

// String renders a debug view of the value. It is not guaranteed to be
// valid JSON (in particular, string escaping is not round-tripped).
func (v *Value) String() string {
	switch v.typ {
	case Null:
		return "null"
	case Integer, Number:
		return v.numberText()
	case String:
		return strconv.Quote(v.stringValue)
	case Boolean:
		if v.booleanValue {
			return "true"
		}
		return "false"
	case Array:
		s := "["
		for i, val := range v.arrayValue {
			if i > 0 {
				s += ", "
			}
			s += val.String()
		}
		return s + "]"
	case Object:
		s := "{"
		for i, p := range v.objectValue {
			if i > 0 {
				s += ", "
			}
			s += strconv.Quote(p.key) + ": " + p.val.String()
		}
		return s + "}"
	}
	return "<unknown>"
}

// Index is a fluent accessor for array members. It returns a Value of
// unknown Type instead of an error on an out-of-range index or a
// non-array receiver, so a chain of Index/Key calls can be written
// without checking errors at every step.
func (v *Value) Index(i int) *Value {
	if v.typ != Array || i < 0 || i >= len(v.arrayValue) {
		return &Value{typ: typeUnknown}
	}
	return v.arrayValue[i]
}

// Key is Index's counterpart for object members.
func (v *Value) Key(k string) *Value {
	if v.typ != Object {
		return &Value{typ: typeUnknown}
	}
	for _, p := range v.objectValue {
		if p.key == k {
			return p.val
		}
	}
	return &Value{typ: typeUnknown}
}
