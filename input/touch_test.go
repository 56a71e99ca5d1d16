package input

import (
	"testing"

	"github.com/mobile-next/pageswipe/swipe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTouch(t *testing.T) {
	tests := []struct {
		name   string
		typ    string
		kind   swipe.EventKind
		points int
	}{
		{"start", "touchstart", swipe.EventStart, 1},
		{"move", "touchmove", swipe.EventMove, 1},
		{"end", "touchend", swipe.EventEnd, 0},
		{"cancel", "touchcancel", swipe.EventCancel, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			touches := make([]Touch, tt.points)
			for i := range touches {
				touches[i] = Touch{Identifier: i, PageX: 10, PageY: 20}
			}

			ev, err := FromTouch(TouchEvent{Type: tt.typ, Touches: touches})
			require.NoError(t, err)
			assert.Equal(t, tt.kind, ev.Kind)
			assert.Len(t, ev.Points, tt.points)
		})
	}
}

func TestFromTouch_KeepsOrder(t *testing.T) {
	ev, err := FromTouch(TouchEvent{
		Type: "touchstart",
		Touches: []Touch{
			{Identifier: 3, PageX: 1, PageY: 2},
			{Identifier: 1, PageX: 3, PageY: 4},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []swipe.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, ev.Points)
}

func TestFromTouch_UnknownType(t *testing.T) {
	_, err := FromTouch(TouchEvent{Type: "touchleave"})
	assert.Error(t, err)
}
