package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcvoid/jsonstream"
	"github.com/mcvoid/jsonstream/internal/engine"
	"github.com/mcvoid/jsonstream/sink"
	"github.com/mcvoid/jsonstream/source"
)

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "push-map", PushMap.String())
	assert.Equal(t, "pop-into-array", PopIntoArray.String())
	assert.Equal(t, "<unknown event kind>", numKinds.String())
	assert.Equal(t, "<unknown event kind>", Kind(-1).String())
}

func TestRecordsCallsInOrder(t *testing.T) {
	snk := New()
	eng := engine.New()
	src := source.NewSlice([]byte(`{"a":1}`))

	r := eng.Run(src, snk)
	require.Equal(t, jsonstream.End, r.Kind)

	var kinds []Kind
	for _, e := range snk.Events {
		kinds = append(kinds, e.Kind)
	}
	assert.Equal(t, []Kind{
		PushMap,
		StartString, AppendStringRange, FinalizeString,
		PushNumber,
		PopIntoMap,
		FinalizeMap,
	}, kinds)
}

func TestBailingSuspendsOnceThenSucceeds(t *testing.T) {
	snk := NewBailing(1)
	eng := engine.New()
	src := source.NewSlice([]byte("true"))

	r := eng.Run(src, snk)
	require.Equal(t, jsonstream.SinkSuspend, r.Kind)
	assert.Empty(t, snk.Events)

	r = eng.Run(src, snk)
	require.Equal(t, jsonstream.End, r.Kind)
	require.Len(t, snk.Events, 1)
	assert.Equal(t, PushBool, snk.Events[0].Kind)
	assert.True(t, snk.Events[0].Bool)
}

func TestEventStringFormatting(t *testing.T) {
	e := Event{Kind: PushBool, Tag: sink.ArrayValue, Bool: true}
	assert.Contains(t, e.String(), "push-bool")
	assert.Contains(t, e.String(), "array-value")
	assert.Contains(t, e.String(), "true")
}
