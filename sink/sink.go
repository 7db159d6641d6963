// Package sink defines the event-receiver contract the decoder reports
// structural events to. A Sink may refuse any fallible call by
// returning Suspend; the engine remembers exactly what was refused and
// replays it, verbatim, the next time it is run.
package sink

import "github.com/mcvoid/jsonstream"

// PositionTag says where, structurally, a value sits: at the document
// root, as an object's value, or as an array element. Object keys use
// the separate, more specific StringPosition.
type PositionTag int

const (
	Root PositionTag = iota
	MapValue
	ArrayValue
)

var positionTagStrings = [...]string{"root", "map-value", "array-value"}

func (t PositionTag) String() string {
	if t < 0 || int(t) >= len(positionTagStrings) {
		return "<unknown position tag>"
	}
	return positionTagStrings[t]
}

// StringPosition is PositionTag's counterpart for strings, which adds
// the map-key case.
type StringPosition int

const (
	StringRoot StringPosition = iota
	StringMapKey
	StringMapValue
	StringArrayValue
)

var stringPositionStrings = [...]string{"root", "map-key", "map-value", "array-value"}

func (p StringPosition) String() string {
	if p < 0 || int(p) >= len(stringPositionStrings) {
		return "<unknown string position>"
	}
	return stringPositionStrings[p]
}

// Status is what every fallible Sink method returns.
type Status int

const (
	Ok Status = iota
	Suspend
)

func (s Status) String() string {
	if s == Ok {
		return "ok"
	}
	return "suspend"
}

// Sink receives structural decode events. PushMap, PushArray,
// StartString, AppendString*, PopIntoMap and PopIntoArray never fail:
// they only record bookkeeping the sink cannot meaningfully refuse.
// PushNumber, PushBool, PushNull, FinalizeString, FinalizeArray and
// FinalizeMap may return Suspend when the sink isn't ready to accept
// the value yet (for example, a downstream consumer applying
// backpressure); the engine will call the exact same method again,
// with the exact same arguments, the next time it is run.
type Sink interface {
	PushMap(tag PositionTag)
	PushArray(tag PositionTag)
	PushNumber(tag PositionTag, data jsonstream.NumberData) Status
	PushBool(tag PositionTag, value bool) Status
	PushNull(tag PositionTag) Status

	StartString(pos StringPosition)
	AppendStringRange(r jsonstream.Range)
	AppendStringSingle(b byte)
	AppendStringCodepoint(cp rune)
	FinalizeString(pos StringPosition) Status

	FinalizeArray(tag PositionTag) Status
	FinalizeMap(tag PositionTag) Status
	PopIntoArray()
	PopIntoMap()
}
