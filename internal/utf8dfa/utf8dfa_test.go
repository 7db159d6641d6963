package utf8dfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidASCII(t *testing.T) {
	state := Accept
	for _, c := range []byte("test") {
		state = Decode(state, c)
		assert.NotEqual(t, Reject, state)
	}
}

func TestTwoByteSequenceDoesNotRejectOnLeadByte(t *testing.T) {
	state := Decode(Accept, 0xc2)
	assert.NotEqual(t, Reject, state)
	assert.False(t, ShouldStop(state))
}

func TestValidTwoByteSequence(t *testing.T) {
	state := Accept
	for _, c := range []byte{0xc3, 0xa9} { // U+00E9, "é"
		state = Decode(state, c)
	}
	assert.Equal(t, Accept, state)
}

func TestValidThreeByteSequence(t *testing.T) {
	state := Accept
	for _, c := range []byte{0xe2, 0x82, 0xac} { // U+20AC, "€"
		state = Decode(state, c)
	}
	assert.Equal(t, Accept, state)
}

func TestOverlongEncodingRejected(t *testing.T) {
	// 0xc0 0x80 is an overlong encoding of NUL and must never validate.
	state := Decode(Accept, 0xc0)
	assert.True(t, ShouldStop(state))
	assert.Equal(t, Reject, state)
}

func TestControlByteIsRejected(t *testing.T) {
	state := Decode(Accept, 0x01)
	assert.True(t, ShouldStop(state))
	assert.Equal(t, Reject, state)
}

func TestQuoteAndBackslashAreSpecialFromAccept(t *testing.T) {
	for _, b := range []byte{'"', '\\'} {
		state := Decode(Accept, b)
		assert.True(t, ShouldStop(state))
		assert.Equal(t, Special, state)
	}
}

func TestQuoteMidSequenceIsRejected(t *testing.T) {
	state := Decode(Accept, 0xe2) // start of a 3-byte sequence
	state = Decode(state, '"')
	assert.True(t, ShouldStop(state))
	assert.Equal(t, Reject, state)
}

func TestTruncatedSequenceThenEOFLooksLikeContinuation(t *testing.T) {
	state := Decode(Accept, 0xe2)
	assert.False(t, ShouldStop(state))
	state = Decode(state, 0x82)
	assert.False(t, ShouldStop(state))
}
