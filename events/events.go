// Package events records every call a Sink receives as a flat log,
// instead of building a tree. It exists to make resumption correctness
// checkable (the same document fed through a chunked source and a
// plain slice source must produce identical logs) and to give a
// driver something to print as a trace.
package events

import (
	"fmt"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/sink"
)

// Kind is which Sink method produced an Event.
type Kind int

const (
	PushMap Kind = iota
	PushArray
	PushNumber
	PushBool
	PushNull
	StartString
	AppendStringRange
	AppendStringSingle
	AppendStringCodepoint
	FinalizeString
	FinalizeArray
	FinalizeMap
	PopIntoMap
	PopIntoArray
	numKinds
)

var kindStrings = [numKinds]string{
	"push-map",
	"push-array",
	"push-number",
	"push-bool",
	"push-null",
	"start-string",
	"append-string-range",
	"append-string-single",
	"append-string-codepoint",
	"finalize-string",
	"finalize-array",
	"finalize-map",
	"pop-into-map",
	"pop-into-array",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "<unknown event kind>"
	}
	return kindStrings[k]
}

// Event is one Sink call, with whichever fields that call's kind uses.
type Event struct {
	Kind      Kind
	Tag       sink.PositionTag
	StringPos sink.StringPosition
	Number    jsonstream.NumberData
	Bool      bool
	Range     jsonstream.Range
	Byte      byte
	Codepoint rune
}

func (e Event) String() string {
	switch e.Kind {
	case PushMap, PushArray:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
	case PushNumber:
		return fmt.Sprintf("%s(%s, %+v)", e.Kind, e.Tag, e.Number)
	case PushBool:
		return fmt.Sprintf("%s(%s, %v)", e.Kind, e.Tag, e.Bool)
	case PushNull, FinalizeArray, FinalizeMap:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
	case StartString, FinalizeString:
		return fmt.Sprintf("%s(%s)", e.Kind, e.StringPos)
	case AppendStringRange:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Range)
	case AppendStringSingle:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Byte)
	case AppendStringCodepoint:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Codepoint)
	default:
		return e.Kind.String()
	}
}

// Sink records every call it receives, in order, into Events.
type Sink struct {
	Events []Event

	suspendOnCall int
	calls         int
	hasBailed     bool
}

// New returns a Sink that never suspends.
func New() *Sink {
	return &Sink{}
}

// NewBailing returns a Sink whose suspendOnCall'th fallible call
// (1-indexed) returns Suspend once, then succeeds on retry, the same
// convention dom.NewBailing uses.
func NewBailing(suspendOnCall int) *Sink {
	return &Sink{suspendOnCall: suspendOnCall}
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

func (s *Sink) record(e Event) {
	s.Events = append(s.Events, e)
}

func (s *Sink) PushMap(tag sink.PositionTag) {
	s.record(Event{Kind: PushMap, Tag: tag})
}

func (s *Sink) PushArray(tag sink.PositionTag) {
	s.record(Event{Kind: PushArray, Tag: tag})
}

func (s *Sink) PushNumber(tag sink.PositionTag, data jsonstream.NumberData) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: PushNumber, Tag: tag, Number: data})
	return sink.Ok
}

func (s *Sink) PushBool(tag sink.PositionTag, value bool) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: PushBool, Tag: tag, Bool: value})
	return sink.Ok
}

func (s *Sink) PushNull(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: PushNull, Tag: tag})
	return sink.Ok
}

func (s *Sink) StartString(pos sink.StringPosition) {
	s.record(Event{Kind: StartString, StringPos: pos})
}

func (s *Sink) AppendStringRange(r jsonstream.Range) {
	s.record(Event{Kind: AppendStringRange, Range: r})
}

func (s *Sink) AppendStringSingle(b byte) {
	s.record(Event{Kind: AppendStringSingle, Byte: b})
}

func (s *Sink) AppendStringCodepoint(cp rune) {
	s.record(Event{Kind: AppendStringCodepoint, Codepoint: cp})
}

func (s *Sink) FinalizeString(pos sink.StringPosition) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: FinalizeString, StringPos: pos})
	return sink.Ok
}

func (s *Sink) FinalizeArray(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: FinalizeArray, Tag: tag})
	return sink.Ok
}

func (s *Sink) FinalizeMap(tag sink.PositionTag) sink.Status {
	if s.maybeBail() {
		return sink.Suspend
	}
	s.record(Event{Kind: FinalizeMap, Tag: tag})
	return sink.Ok
}

func (s *Sink) PopIntoArray() {
	s.record(Event{Kind: PopIntoArray})
}

func (s *Sink) PopIntoMap() {
	s.record(Event{Kind: PopIntoMap})
}
