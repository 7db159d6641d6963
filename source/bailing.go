package source

import "github.com/mcvoid/jsonstream"

// Bailing wraps a Slice and forces a single Suspend the Nth time
// PeekByte is called, then behaves normally afterwards. It exists to
// exercise the engine's source-suspend/resume path deterministically
// in tests, mirroring the "bail on a magic byte" test double the
// reference tokenizer used for the same purpose.
type Bailing struct {
	inner     *Slice
	calls     int
	suspendAt int
	hasBailed bool
}

// NewBailing returns a Source that suspends exactly once, on the
// suspendAt'th call to PeekByte (1-indexed), and is a plain Slice
// otherwise.
func NewBailing(data []byte, suspendAt int) *Bailing {
	return &Bailing{inner: NewSlice(data), suspendAt: suspendAt}
}

func (b *Bailing) Position() jsonstream.Position {
	return b.inner.Position()
}

func (b *Bailing) PeekByte() (byte, PeekStatus) {
	b.calls++
	if !b.hasBailed && b.calls == b.suspendAt {
		b.hasBailed = true
		return 0, Suspend
	}
	return b.inner.PeekByte()
}

func (b *Bailing) Skip(n int) {
	b.inner.Skip(n)
}
