package source

import "github.com/mcvoid/jsonstream"

// Chunked is a Source fed incrementally, as bytes arrive from a socket
// or pipe. PeekByte suspends once the cursor runs past whatever has
// been handed to Feed so far, and resumes transparently once more
// bytes are fed. Close marks the stream exhausted so a subsequent
// PeekByte past the buffered bytes reports Eof instead of Suspend.
type Chunked struct {
	chunks   [][]byte
	chunkIdx int
	byteIdx  int
	pos      int
	closed   bool
}

// NewChunked returns an empty Chunked source. Feed it before calling
// into the engine, or the very first PeekByte will suspend.
func NewChunked() *Chunked {
	return &Chunked{}
}

// Feed appends more bytes for the source to serve. Safe to call after
// a SourceSuspend result.
func (c *Chunked) Feed(data []byte) {
	if len(data) == 0 {
		return
	}
	c.chunks = append(c.chunks, data)
}

// Close declares that no further Feed calls are coming.
func (c *Chunked) Close() {
	c.closed = true
}

func (c *Chunked) Position() jsonstream.Position {
	return jsonstream.Position(c.pos)
}

func (c *Chunked) advance() {
	for c.chunkIdx < len(c.chunks) && c.byteIdx >= len(c.chunks[c.chunkIdx]) {
		c.chunkIdx++
		c.byteIdx = 0
	}
}

func (c *Chunked) PeekByte() (byte, PeekStatus) {
	c.advance()
	if c.chunkIdx >= len(c.chunks) {
		if c.closed {
			return 0, Eof
		}
		return 0, Suspend
	}
	return c.chunks[c.chunkIdx][c.byteIdx], Ready
}

func (c *Chunked) Skip(n int) {
	for n > 0 {
		c.advance()
		if c.chunkIdx >= len(c.chunks) {
			return
		}
		avail := len(c.chunks[c.chunkIdx]) - c.byteIdx
		take := n
		if take > avail {
			take = avail
		}
		c.byteIdx += take
		c.pos += take
		n -= take
	}
}
