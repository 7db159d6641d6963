package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkedSuspendsUntilFed(t *testing.T) {
	c := NewChunked()
	_, status := c.PeekByte()
	assert.Equal(t, Suspend, status)

	c.Feed([]byte("ab"))
	b, status := c.PeekByte()
	assert.Equal(t, Ready, status)
	assert.Equal(t, byte('a'), b)
}

func TestChunkedAdvancesAcrossChunkBoundaries(t *testing.T) {
	c := NewChunked()
	c.Feed([]byte("ab"))
	c.Feed([]byte("cd"))

	var out []byte
	for i := 0; i < 4; i++ {
		b, status := c.PeekByte()
		assert.Equal(t, Ready, status)
		out = append(out, b)
		c.Skip(1)
	}
	assert.Equal(t, []byte("abcd"), out)
}

func TestChunkedSkipAcrossBoundary(t *testing.T) {
	c := NewChunked()
	c.Feed([]byte("a"))
	c.Feed([]byte("bcd"))

	c.Skip(3)
	b, status := c.PeekByte()
	assert.Equal(t, Ready, status)
	assert.Equal(t, byte('d'), b)
}

func TestChunkedReportsEofOnceClosed(t *testing.T) {
	c := NewChunked()
	c.Feed([]byte("a"))
	c.Skip(1)

	_, status := c.PeekByte()
	assert.Equal(t, Suspend, status)

	c.Close()
	_, status = c.PeekByte()
	assert.Equal(t, Eof, status)
}

func TestChunkedPositionTracksConsumedBytes(t *testing.T) {
	c := NewChunked()
	c.Feed([]byte("abc"))
	c.Skip(2)
	assert.EqualValues(t, 2, c.Position())
}
