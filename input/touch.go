package input

import (
	"fmt"

	"github.com/mobile-next/pageswipe/swipe"
)

// Touch is one entry of a touch event's touch list
type Touch struct {
	Identifier int     `json:"identifier" plist:"identifier"`
	PageX      float64 `json:"pageX" plist:"pageX"`
	PageY      float64 `json:"pageY" plist:"pageY"`
}

// TouchEvent mirrors the touchstart/touchmove/touchend/touchcancel family.
// Touches holds the contacts still on the surface, so it is typically
// empty for touchend.
type TouchEvent struct {
	Type    string  `json:"type" plist:"type"`
	Touches []Touch `json:"touches" plist:"touches"`
}

var touchKinds = map[string]swipe.EventKind{
	"touchstart":  swipe.EventStart,
	"touchmove":   swipe.EventMove,
	"touchend":    swipe.EventEnd,
	"touchcancel": swipe.EventCancel,
}

// FromTouch converts a touch event into its canonical form
func FromTouch(ev TouchEvent) (swipe.Event, error) {
	kind, ok := touchKinds[ev.Type]
	if !ok {
		return swipe.Event{}, fmt.Errorf("unknown touch event type '%s'", ev.Type)
	}

	points := make([]swipe.Point, len(ev.Touches))
	for i, t := range ev.Touches {
		points[i] = swipe.Point{X: t.PageX, Y: t.PageY}
	}

	return swipe.Event{Kind: kind, Points: points}, nil
}
