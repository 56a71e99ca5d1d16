package input

import (
	"fmt"
	"sort"
	"time"

	"github.com/mobile-next/pageswipe/swipe"
)

// DefaultStepInterval is the spacing of the intermediate moves generated
// for a pointerMove action with a duration
const DefaultStepInterval = 16 * time.Millisecond

// Action is a single WebDriver pointer action. Duration is in milliseconds.
type Action struct {
	Type     string  `json:"type" plist:"type"`
	Duration int     `json:"duration,omitempty" plist:"duration,omitempty"`
	X        float64 `json:"x,omitempty" plist:"x,omitempty"`
	Y        float64 `json:"y,omitempty" plist:"y,omitempty"`
	Button   int     `json:"button,omitempty" plist:"button,omitempty"`
}

type PointerParameters struct {
	PointerType string `json:"pointerType" plist:"pointerType"`
}

// PointerSequence is the action list of one input source, as sent in a
// WebDriver "actions" request
type PointerSequence struct {
	Type       string            `json:"type" plist:"type"`
	ID         string            `json:"id" plist:"id"`
	Parameters PointerParameters `json:"parameters" plist:"parameters"`
	Actions    []Action          `json:"actions" plist:"actions"`
}

// TimedEvent is a canonical event scheduled relative to the start of a recording
type TimedEvent struct {
	At    time.Duration
	Event swipe.Event
}

type timedPointerEvent struct {
	at  time.Duration
	seq int
	ev  PointerEvent
}

// FromActions expands WebDriver pointer action sequences into canonical
// events. Sequences advance tick by tick; a tick lasts as long as its
// longest action. Moves with a duration are interpolated every step.
func FromActions(sequences []PointerSequence, step time.Duration) ([]TimedEvent, error) {
	if step <= 0 {
		step = DefaultStepInterval
	}

	ticks := 0
	for i, seq := range sequences {
		if seq.Type != "" && seq.Type != "pointer" {
			return nil, fmt.Errorf("sequence %d: unsupported input source type '%s'", i, seq.Type)
		}
		if len(seq.Actions) > ticks {
			ticks = len(seq.Actions)
		}
	}

	type cursor struct {
		x, y float64
	}
	cursors := make([]cursor, len(sequences))

	var raw []timedPointerEvent
	var tickStart time.Duration

	for tick := 0; tick < ticks; tick++ {
		var tickLength time.Duration

		for si, seq := range sequences {
			if tick >= len(seq.Actions) {
				continue
			}

			action := seq.Actions[tick]
			duration := time.Duration(action.Duration) * time.Millisecond
			if duration > tickLength {
				tickLength = duration
			}

			emit := func(at time.Duration, typ string, x, y float64) {
				raw = append(raw, timedPointerEvent{
					at:  at,
					seq: si,
					ev:  PointerEvent{Type: typ, PointerID: si, PageX: x, PageY: y},
				})
			}

			c := &cursors[si]
			switch action.Type {
			case "pointerMove":
				steps := int(duration / step)
				if steps < 1 {
					steps = 1
				}
				fromX, fromY := c.x, c.y
				for k := 1; k <= steps; k++ {
					frac := float64(k) / float64(steps)
					x := fromX + (action.X-fromX)*frac
					y := fromY + (action.Y-fromY)*frac
					emit(tickStart+time.Duration(float64(duration)*frac), "pointermove", x, y)
				}
				c.x, c.y = action.X, action.Y

			case "pointerDown":
				emit(tickStart, "pointerdown", c.x, c.y)

			case "pointerUp":
				emit(tickStart+duration, "pointerup", c.x, c.y)

			case "pointerCancel":
				emit(tickStart, "pointercancel", c.x, c.y)

			case "pause":

			default:
				return nil, fmt.Errorf("sequence %d action %d: unknown action type '%s'", si, tick, action.Type)
			}
		}

		tickStart += tickLength
	}

	sort.SliceStable(raw, func(i, j int) bool {
		return raw[i].at < raw[j].at
	})

	tracker := NewPointerTracker()
	events := make([]TimedEvent, 0, len(raw))
	for _, r := range raw {
		ev, ok, err := tracker.Translate(r.ev)
		if err != nil {
			return nil, err
		}
		if ok {
			events = append(events, TimedEvent{At: r.at, Event: ev})
		}
	}

	return events, nil
}

// SwipeActions builds the single finger drag a WebDriver swipe request
// performs: move to the start, press, move to the end over duration, release
func SwipeActions(x1, y1, x2, y2 float64, duration time.Duration) []PointerSequence {
	return []PointerSequence{
		{
			Type:       "pointer",
			ID:         "finger1",
			Parameters: PointerParameters{PointerType: "touch"},
			Actions: []Action{
				{Type: "pointerMove", Duration: 0, X: x1, Y: y1},
				{Type: "pointerDown", Button: 0},
				{Type: "pointerMove", Duration: int(duration.Milliseconds()), X: x2, Y: y2},
				{Type: "pointerUp", Button: 0},
			},
		},
	}
}
