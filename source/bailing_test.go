package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBailingSuspendsOnceAtTheGivenCall(t *testing.T) {
	b := NewBailing([]byte("abc"), 2)

	_, status := b.PeekByte()
	assert.Equal(t, Ready, status)

	_, status = b.PeekByte()
	assert.Equal(t, Suspend, status)

	// Retried call: behaves normally now and won't bail again.
	by, status := b.PeekByte()
	assert.Equal(t, Ready, status)
	assert.Equal(t, byte('a'), by)
}

func TestBailingNeverSuspendsAgainAfterItsOneBail(t *testing.T) {
	b := NewBailing([]byte("ab"), 1)

	_, status := b.PeekByte()
	assert.Equal(t, Suspend, status)

	for i := 0; i < 2; i++ {
		_, status := b.PeekByte()
		assert.NotEqual(t, Suspend, status)
	}
}
