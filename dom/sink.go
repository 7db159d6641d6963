package dom

import (
	"unicode/utf8"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/sink"
)

// Sink builds a Value tree out of the events the engine reports. It
// never needs the whole document up front to do the attaching (values
// are assembled as they complete), but it does resolve string and
// number byte ranges against data, so it is constructed with the full
// buffer the decode is running over.
//
// Internally it keeps every value that has completed but not yet been
// attached to its parent on a single stack, mirroring the reference
// enum sink's own stack-of-partial-values technique: a finished scalar
// or container sits on top until a PopIntoArray/PopIntoMap call folds
// it into whatever is now on top beneath it. The one value left on the
// stack once decoding ends is the result.
type Sink struct {
	data     []byte
	stack    []*Value
	keyStack []string
	strBuf   []byte

	suspendOnCall int
	calls         int
	hasBailed     bool
}

// New returns a Sink that resolves string and number ranges against
// data and never suspends.
func New(data []byte) *Sink {
	return &Sink{data: data}
}

// NewBailing returns a Sink that behaves like New, except its
// suspendOnCall'th fallible call (1-indexed, counting PushNumber,
// PushBool, PushNull, FinalizeString, FinalizeArray and FinalizeMap)
// returns Suspend once, then succeeds normally on retry. It exists to
// exercise the engine's dirty-close reentry path in tests.
func NewBailing(data []byte, suspendOnCall int) *Sink {
	return &Sink{data: data, suspendOnCall: suspendOnCall}
}

func (s *Sink) maybeBail() bool {
	if s.suspendOnCall == 0 {
		return false
	}
	s.calls++
	if !s.hasBailed && s.calls == s.suspendOnCall {
		s.hasBailed = true
		return true
	}
	return false
}

func (s *Sink) pop() *Value {
	n := len(s.stack) - 1
	v := s.stack[n]
	s.stack = s.stack[:n]
	return v
}

func (s *Sink) PushMap(tag sink.PositionTag) {
	s.stack = append(s.stack, &Value{typ: Object})
	s.keyStack = append(s.keyStack, "")
}

func (s *Sink) PushArray(tag sink.PositionTag) {
	s.stack = append(s.stack, &Value{typ: Array})
}

func (s *Sink) PushNumber(tag sink.PositionTag, data jsonstream.NumberData) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.stack = append(s.stack, s.numberValue(data))
	return sink.Ok
}

func (s *Sink) PushBool(tag sink.PositionTag, value bool) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.stack = append(s.stack, &Value{typ: Boolean, booleanValue: value})
	return sink.Ok
}

func (s *Sink) PushNull(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.stack = append(s.stack, &Value{typ: Null})
	return sink.Ok
}

func (s *Sink) StartString(pos sink.StringPosition) {
	s.strBuf = s.strBuf[:0]
}

func (s *Sink) AppendStringRange(r jsonstream.Range) {
	s.strBuf = append(s.strBuf, s.data[r.Start:r.End]...)
}

func (s *Sink) AppendStringSingle(b byte) {
	s.strBuf = append(s.strBuf, b)
}

func (s *Sink) AppendStringCodepoint(cp rune) {
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], cp)
	s.strBuf = append(s.strBuf, buf[:n]...)
}

func (s *Sink) FinalizeString(pos sink.StringPosition) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	str := string(s.strBuf)
	if pos == sink.StringMapKey {
		s.keyStack[len(s.keyStack)-1] = str
		return sink.Ok
	}
	s.stack = append(s.stack, &Value{typ: String, stringValue: str})
	return sink.Ok
}

func (s *Sink) FinalizeArray(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	return sink.Ok
}

func (s *Sink) FinalizeMap(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.keyStack = s.keyStack[:len(s.keyStack)-1]
	return sink.Ok
}

func (s *Sink) PopIntoArray() {
	v := s.pop()
	arr := s.stack[len(s.stack)-1]
	arr.arrayValue = append(arr.arrayValue, v)
}

func (s *Sink) PopIntoMap() {
	v := s.pop()
	obj := s.stack[len(s.stack)-1]
	key := s.keyStack[len(s.keyStack)-1]
	obj.objectValue = append(obj.objectValue, pair{key: key, val: v})
	s.keyStack[len(s.keyStack)-1] = ""
}

// Result returns the decoded value. Call it only after Run has
// returned jsonstream.End; before that the stack may hold more than
// one entry and this returns an empty Value.
func (s *Sink) Result() *Value {
	if len(s.stack) != 1 {
		return &Value{}
	}
	return s.stack[0]
}

// numberValue wraps a scanned number's byte ranges in a Value without
// parsing them. Whether it's Integer or Number is structural (a decimal
// or exponent part makes it Number); AsInteger/AsNumber resolve the
// spans against s.data only once a caller actually asks for the value.
func (s *Sink) numberValue(data jsonstream.NumberData) *Value {
	typ := Integer
	if data.Decimal != nil || data.Exponent != nil {
		typ = Number
	}
	return &Value{typ: typ, number: data, numberSrc: s.data}
}
