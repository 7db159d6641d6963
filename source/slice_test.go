package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcvoid/jsonstream"
)

func TestSliceReadsThroughToEOF(t *testing.T) {
	s := NewSlice([]byte("ab"))

	b, status := s.PeekByte()
	assert.Equal(t, Ready, status)
	assert.Equal(t, byte('a'), b)
	assert.Equal(t, jsonstream.Position(0), s.Position())

	s.Skip(1)
	b, status = s.PeekByte()
	assert.Equal(t, Ready, status)
	assert.Equal(t, byte('b'), b)

	s.Skip(1)
	_, status = s.PeekByte()
	assert.Equal(t, Eof, status)
}

func TestSlicePeekByteIsIdempotent(t *testing.T) {
	s := NewSlice([]byte("x"))
	b1, st1 := s.PeekByte()
	b2, st2 := s.PeekByte()
	assert.Equal(t, b1, b2)
	assert.Equal(t, st1, st2)
}

func TestSlicePeekSlice(t *testing.T) {
	s := NewSlice([]byte("hello"))
	slice, ok := s.PeekSlice(3)
	assert.True(t, ok)
	assert.Equal(t, []byte("hel"), slice)

	_, ok = s.PeekSlice(100)
	assert.False(t, ok)

	s.Skip(5)
	_, ok = s.PeekSlice(1)
	assert.False(t, ok)
}
