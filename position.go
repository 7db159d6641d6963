// Package jsonstream provides an incremental, pull-parsing JSON decoder.
// The decoder reads from a Source and reports structural events to a
// Sink; both collaborators may ask the decoder to suspend at any byte
// boundary and be resumed later without losing progress.
package jsonstream

import "fmt"

// Position is a byte offset into the document being decoded. It only
// ever increases over the lifetime of a single decode.
type Position uint64

func (p Position) String() string {
	return fmt.Sprintf("%d", uint64(p))
}

// Range is a half-open byte interval [Start, End) within the document.
// The decoder never copies the bytes a Range refers to; a Sink resolves
// the Range against its own copy of the source, or against the slice
// it was constructed with.
type Range struct {
	Start Position
	End   Position
}

// Empty reports whether the range spans zero bytes.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Len returns the number of bytes the range spans.
func (r Range) Len() uint64 {
	return uint64(r.End - r.Start)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", uint64(r.Start), uint64(r.End))
}

// NumberData is the structural, non-arithmetic view of a scanned JSON
// number: the byte ranges of its integer, optional decimal, and
// optional exponent parts, plus their signs. The decoder performs no
// numeric conversion; that is left to the sink.
type NumberData struct {
	Sign         bool // true for positive or unsigned, false for a leading '-'
	Integer      Range
	Decimal      *Range // nil if the number has no fractional part
	ExponentSign bool   // true for positive or unsigned, false for a leading '-'
	Exponent     *Range // nil if the number has no exponent part
}
