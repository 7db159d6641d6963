package source

import "github.com/mcvoid/jsonstream"

// Slice is a Source over an in-memory byte slice. It never suspends.
type Slice struct {
	data []byte
	pos  int
}

// NewSlice wraps data as a non-suspending Source.
func NewSlice(data []byte) *Slice {
	return &Slice{data: data}
}

func (s *Slice) Position() jsonstream.Position {
	return jsonstream.Position(s.pos)
}

func (s *Slice) PeekByte() (byte, PeekStatus) {
	if s.pos >= len(s.data) {
		return 0, Eof
	}
	return s.data[s.pos], Ready
}

func (s *Slice) Skip(n int) {
	s.pos += n
}

// PeekSlice implements PeekSlicer.
func (s *Slice) PeekSlice(n int) ([]byte, bool) {
	if n < 0 || s.pos+n > len(s.data) {
		return nil, false
	}
	return s.data[s.pos : s.pos+n], true
}
