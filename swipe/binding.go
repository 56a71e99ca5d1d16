package swipe

import "time"

// EventKind is one of the four canonical gesture lifecycle events
type EventKind string

const (
	EventStart  EventKind = "start"
	EventMove   EventKind = "move"
	EventEnd    EventKind = "end"
	EventCancel EventKind = "cancel"
)

// Event is a normalized pointer lifecycle event. PreventDefault, when set,
// suppresses the platform's native scrolling for this event.
type Event struct {
	Kind           EventKind
	Points         []Point
	PreventDefault func()
}

// Host is the surface a Binding drives
type Host interface {
	Geometry
	ApplyFollowOffset(x float64)
	AnimateTo(target float64, duration time.Duration, easing string, onComplete func())
}

// Binding connects a tracker to the host surface it moves
type Binding struct {
	host    Host
	tracker *Tracker
}

// Bind creates a tracker reading its geometry from host
func Bind(host Host, cfg Config) (*Binding, error) {
	tracker, err := NewTracker(host, cfg)
	if err != nil {
		return nil, err
	}

	return &Binding{host: host, tracker: tracker}, nil
}

func (b *Binding) Tracker() *Tracker {
	return b.tracker
}

// Handle dispatches one event. It returns the decision made by an end
// event, if any.
func (b *Binding) Handle(ev Event) *Decision {
	switch ev.Kind {
	case EventStart:
		b.tracker.Start(ev.Points)

	case EventMove:
		res := b.tracker.Move(ev.Points)
		if res.PreventDefault && ev.PreventDefault != nil {
			ev.PreventDefault()
		}
		if res.Follow {
			b.host.ApplyFollowOffset(res.FollowOffset)
		}

	case EventEnd:
		decision, ok := b.tracker.End(ev.Points)
		if !ok {
			return nil
		}
		b.host.AnimateTo(decision.Target, decision.Duration, decision.Easing, decision.Complete)
		return decision

	case EventCancel:
		b.tracker.Cancel()
	}

	return nil
}
