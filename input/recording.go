package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mobile-next/pageswipe/swipe"
	"howett.net/plist"
)

const (
	FamilyTouch   = "touch"
	FamilyPointer = "pointer"
)

// Record is one captured native event. Touch records use Touches, pointer
// records use PointerID/PageX/PageY. At is the offset from the start of
// the recording in milliseconds.
type Record struct {
	Family    string  `json:"family,omitempty" plist:"family,omitempty"`
	Type      string  `json:"type" plist:"type"`
	At        int     `json:"at,omitempty" plist:"at,omitempty"`
	Touches   []Touch `json:"touches,omitempty" plist:"touches,omitempty"`
	PointerID int     `json:"pointerId,omitempty" plist:"pointerId,omitempty"`
	PageX     float64 `json:"pageX,omitempty" plist:"pageX,omitempty"`
	PageY     float64 `json:"pageY,omitempty" plist:"pageY,omitempty"`
}

func (r Record) family() string {
	if r.Family != "" {
		return r.Family
	}
	if strings.HasPrefix(strings.ToLower(r.Type), "touch") {
		return FamilyTouch
	}
	return FamilyPointer
}

// Recording is a replayable capture of the events delivered to one surface
type Recording struct {
	Width   float64           `json:"width" plist:"width"`
	Offset  float64           `json:"offset,omitempty" plist:"offset,omitempty"`
	Events  []Record          `json:"events,omitempty" plist:"events,omitempty"`
	Actions []PointerSequence `json:"actions,omitempty" plist:"actions,omitempty"`
}

// Decoder turns records into canonical events, keeping pointer state
// between calls
type Decoder struct {
	pointers *PointerTracker
}

func NewDecoder() *Decoder {
	return &Decoder{pointers: NewPointerTracker()}
}

// Decode converts one record. The boolean is false when the record carries
// nothing for the tracker.
func (d *Decoder) Decode(r Record) (swipe.Event, bool, error) {
	switch r.family() {
	case FamilyTouch:
		ev, err := FromTouch(TouchEvent{Type: r.Type, Touches: r.Touches})
		if err != nil {
			return swipe.Event{}, false, err
		}
		return ev, true, nil

	case FamilyPointer:
		return d.pointers.Translate(PointerEvent{
			Type:      r.Type,
			PointerID: r.PointerID,
			PageX:     r.PageX,
			PageY:     r.PageY,
		})

	default:
		return swipe.Event{}, false, fmt.Errorf("unknown event family '%s'", r.Family)
	}
}

// Timeline returns every event of the recording in order. Recorded events
// come first, followed by the expansion of any pointer actions.
func (rec *Recording) Timeline() ([]TimedEvent, error) {
	decoder := NewDecoder()

	var events []TimedEvent
	var last time.Duration
	for i, r := range rec.Events {
		ev, ok, err := decoder.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}

		at := time.Duration(r.At) * time.Millisecond
		if at < last {
			at = last
		}
		last = at

		if ok {
			events = append(events, TimedEvent{At: at, Event: ev})
		}
	}

	if len(rec.Actions) > 0 {
		expanded, err := FromActions(rec.Actions, DefaultStepInterval)
		if err != nil {
			return nil, fmt.Errorf("actions: %w", err)
		}
		for _, te := range expanded {
			te.At += last
			events = append(events, te)
		}
	}

	return events, nil
}

// ParseRecording decodes a recording from JSON or from any plist encoding
func ParseRecording(data []byte) (*Recording, error) {
	var rec Recording

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		if err := json.Unmarshal(trimmed, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse json recording: %w", err)
		}
	} else {
		if _, err := plist.Unmarshal(data, &rec); err != nil {
			return nil, fmt.Errorf("failed to parse plist recording: %w", err)
		}
	}

	if rec.Width < 0 {
		return nil, fmt.Errorf("surface width must not be negative, got %v", rec.Width)
	}

	return &rec, nil
}

// LoadRecording reads a recording file
func LoadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording %s: %w", filepath.Base(path), err)
	}

	return ParseRecording(data)
}

// MarshalPlist encodes a recording as an XML plist
func (rec *Recording) MarshalPlist() ([]byte, error) {
	return plist.MarshalIndent(rec, plist.XMLFormat, "\t")
}
