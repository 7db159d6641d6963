package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionTagString(t *testing.T) {
	assert.Equal(t, "root", Root.String())
	assert.Equal(t, "map-value", MapValue.String())
	assert.Equal(t, "array-value", ArrayValue.String())
	assert.Equal(t, "<unknown position tag>", PositionTag(-1).String())
	assert.Equal(t, "<unknown position tag>", PositionTag(99).String())
}

func TestStringPositionString(t *testing.T) {
	assert.Equal(t, "root", StringRoot.String())
	assert.Equal(t, "map-key", StringMapKey.String())
	assert.Equal(t, "map-value", StringMapValue.String())
	assert.Equal(t, "array-value", StringArrayValue.String())
	assert.Equal(t, "<unknown string position>", StringPosition(-1).String())
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ok", Ok.String())
	assert.Equal(t, "suspend", Suspend.String())
}
