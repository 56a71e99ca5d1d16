package input

import (
	"testing"
	"time"

	"github.com/mobile-next/pageswipe/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(events []TimedEvent) []swipe.EventKind {
	out := make([]swipe.EventKind, len(events))
	for i, e := range events {
		out[i] = e.Event.Kind
	}
	return out
}

func TestFromActions_Swipe(t *testing.T) {
	events, err := FromActions(SwipeActions(160, 100, 40, 100, 64*time.Millisecond), 16*time.Millisecond)
	require.NoError(t, err)

	assert.Equal(t, []swipe.EventKind{
		swipe.EventStart,
		swipe.EventMove,
		swipe.EventMove,
		swipe.EventMove,
		swipe.EventMove,
		swipe.EventEnd,
	}, kinds(events))

	assert.Equal(t, []swipe.Point{{X: 160, Y: 100}}, events[0].Event.Points)
	assert.Equal(t, []swipe.Point{{X: 130, Y: 100}}, events[1].Event.Points)
	assert.Equal(t, []swipe.Point{{X: 40, Y: 100}}, events[4].Event.Points)
	assert.Equal(t, 64*time.Millisecond, events[4].At)
	assert.Empty(t, events[5].Event.Points)
}

func TestFromActions_InstantMove(t *testing.T) {
	events, err := FromActions(SwipeActions(10, 10, 20, 10, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, []swipe.EventKind{swipe.EventStart, swipe.EventMove, swipe.EventEnd}, kinds(events))
}

func TestFromActions_TwoFingers(t *testing.T) {
	finger := func(id string, x float64) PointerSequence {
		return PointerSequence{
			Type: "pointer",
			ID:   id,
			Actions: []Action{
				{Type: "pointerMove", X: x, Y: 100},
				{Type: "pointerDown"},
				{Type: "pointerMove", X: x - 50, Y: 100},
				{Type: "pointerUp"},
			},
		}
	}

	events, err := FromActions([]PointerSequence{finger("a", 100), finger("b", 200)}, 0)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(events), 2)
	assert.Len(t, events[0].Event.Points, 1)
	assert.Len(t, events[1].Event.Points, 2, "second finger down reports both contacts")
}

func TestFromActions_Errors(t *testing.T) {
	_, err := FromActions([]PointerSequence{{Type: "key"}}, 0)
	assert.Error(t, err)

	_, err = FromActions([]PointerSequence{{Type: "pointer", Actions: []Action{{Type: "scroll"}}}}, 0)
	assert.Error(t, err)
}

func TestFromActions_PauseAdvancesTime(t *testing.T) {
	seq := []PointerSequence{{
		Type: "pointer",
		Actions: []Action{
			{Type: "pointerMove", X: 10, Y: 10},
			{Type: "pointerDown"},
			{Type: "pause", Duration: 100},
			{Type: "pointerUp"},
		},
	}}

	events, err := FromActions(seq, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 100*time.Millisecond, events[1].At)
}
