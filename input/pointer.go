package input

import (
	"fmt"
	"strings"

	"github.com/mobile-next/pageswipe/swipe"
)

// PointerEvent mirrors the MSPointer/pointer family, where each event
// describes a single pointer
type PointerEvent struct {
	Type      string  `json:"type" plist:"type"`
	PointerID int     `json:"pointerId" plist:"pointerId"`
	PageX     float64 `json:"pageX" plist:"pageX"`
	PageY     float64 `json:"pageY" plist:"pageY"`
}

type pointerAction int

const (
	pointerDown pointerAction = iota
	pointerMove
	pointerUp
	pointerCancel
)

var pointerActions = map[string]pointerAction{
	"mspointerdown":   pointerDown,
	"mspointermove":   pointerMove,
	"mspointerup":     pointerUp,
	"mspointercancel": pointerCancel,
	"mspointerout":    pointerCancel,
	"pointerdown":     pointerDown,
	"pointermove":     pointerMove,
	"pointerup":       pointerUp,
	"pointercancel":   pointerCancel,
	"pointerout":      pointerCancel,
}

type activePointer struct {
	id    int
	point swipe.Point
}

// PointerTracker keeps the set of pressed pointers so that per-pointer
// events can be turned into events carrying every active contact, the way
// touch events do
type PointerTracker struct {
	active []activePointer
}

func NewPointerTracker() *PointerTracker {
	return &PointerTracker{}
}

// Translate converts ev into a canonical event. The boolean is false for
// events that carry no gesture information, such as a hovering mouse moving
// with no button pressed.
func (p *PointerTracker) Translate(ev PointerEvent) (swipe.Event, bool, error) {
	action, ok := pointerActions[strings.ToLower(ev.Type)]
	if !ok {
		return swipe.Event{}, false, fmt.Errorf("unknown pointer event type '%s'", ev.Type)
	}

	point := swipe.Point{X: ev.PageX, Y: ev.PageY}
	idx := p.indexOf(ev.PointerID)

	switch action {
	case pointerDown:
		if idx >= 0 {
			p.active[idx].point = point
		} else {
			p.active = append(p.active, activePointer{id: ev.PointerID, point: point})
		}
		return swipe.Event{Kind: swipe.EventStart, Points: p.points()}, true, nil

	case pointerMove:
		if idx < 0 {
			return swipe.Event{}, false, nil
		}
		p.active[idx].point = point
		return swipe.Event{Kind: swipe.EventMove, Points: p.points()}, true, nil

	case pointerUp:
		if idx < 0 {
			return swipe.Event{}, false, nil
		}
		p.active = append(p.active[:idx], p.active[idx+1:]...)
		return swipe.Event{Kind: swipe.EventEnd, Points: p.points()}, true, nil

	default:
		p.active = nil
		return swipe.Event{Kind: swipe.EventCancel}, true, nil
	}
}

// Active returns the number of pressed pointers
func (p *PointerTracker) Active() int {
	return len(p.active)
}

func (p *PointerTracker) indexOf(id int) int {
	for i, a := range p.active {
		if a.id == id {
			return i
		}
	}
	return -1
}

func (p *PointerTracker) points() []swipe.Point {
	points := make([]swipe.Point, len(p.active))
	for i, a := range p.active {
		points[i] = a.point
	}
	return points
}
