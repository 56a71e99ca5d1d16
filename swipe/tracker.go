package swipe

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/mobile-next/pageswipe/utils"
)

// Geometry is queried on demand for the surface size and position.
// Values are never cached by the tracker.
type Geometry interface {
	Width() float64
	Offset() float64
}

// GeometryFuncs adapts a pair of functions to Geometry
type GeometryFuncs struct {
	WidthFunc  func() float64
	OffsetFunc func() float64
}

func (g GeometryFuncs) Width() float64  { return g.WidthFunc() }
func (g GeometryFuncs) Offset() float64 { return g.OffsetFunc() }

// Outcome describes where a finished gesture sends the surface
type Outcome string

const (
	SnapLeft  Outcome = "snap_left"
	SnapRight Outcome = "snap_right"
	SnapBack  Outcome = "snap_back"
)

// MoveResult tells the host how to react to a move event. When Follow is
// set the host should place the surface at FollowOffset without animating.
type MoveResult struct {
	PreventDefault bool    `json:"preventDefault"`
	Follow         bool    `json:"follow"`
	FollowOffset   float64 `json:"followOffset,omitempty"`
}

// Decision is the resting position chosen when a gesture ends. The tracker
// adopts Target as its base only once Complete is called, which the host
// does after its snap animation has finished.
type Decision struct {
	Target     float64       `json:"target"`
	Outcome    Outcome       `json:"outcome"`
	Duration   time.Duration `json:"-"`
	DurationMs int64         `json:"durationMs"`
	Easing     string        `json:"easing"`

	tracker *Tracker
	once    sync.Once
}

// Complete commits Target as the tracker's settled offset. Only the first
// call has any effect.
func (d *Decision) Complete() {
	d.once.Do(func() {
		if d.tracker == nil {
			return
		}
		d.tracker.mu.Lock()
		d.tracker.state.Base = d.Target
		d.tracker.state.BaseSet = true
		d.tracker.mu.Unlock()
		utils.Verbose("swipe: base position settled at %v", d.Target)
	})
}

// Tracker recognizes single finger horizontal swipes on one surface. Hosts
// dispatch one event at a time; the mutex only orders those events against
// animation completions arriving from another goroutine.
type Tracker struct {
	geom     Geometry
	config   Config
	warnings []string

	mu    sync.Mutex
	state GestureState
}

// NewTracker validates cfg and returns a tracker with zeroed state and no base position
func NewTracker(geom Geometry, cfg Config) (*Tracker, error) {
	if geom == nil {
		return nil, fmt.Errorf("%w: geometry is required", ErrInvalidConfig)
	}

	warnings, err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	for _, w := range warnings {
		utils.Warn("swipe: %s", w)
	}

	return &Tracker{
		geom:     geom,
		config:   cfg,
		warnings: warnings,
	}, nil
}

func (t *Tracker) Config() Config {
	return t.config
}

func (t *Tracker) Warnings() []string {
	return t.warnings
}

// State returns a copy of the current gesture state
func (t *Tracker) State() GestureState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// InvalidateBase makes the next Start read the settled offset from the
// surface again. A gesture in progress keeps the base it started with.
func (t *Tracker) InvalidateBase() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state.BaseSet = false
}

// Start begins a gesture. Anything other than exactly one contact aborts.
func (t *Tracker) Start(points []Point) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state.ActiveFingers = len(points)

	if t.state.ActiveFingers != 1 {
		utils.Verbose("swipe: start with %d contacts, cancelling", len(points))
		t.reset()
		return
	}

	t.state.Class = Unclassified
	t.state.DeltaX = 0

	if !t.state.BaseSet {
		t.state.Base = t.geom.Offset()
		t.state.BaseSet = true
	}

	t.state.StartX = points[0].X
	t.state.StartY = points[0].Y
}

// Move tracks the finger. The first measurable movement classifies the
// gesture; horizontal gestures ask the host to suppress scrolling and to
// let the surface follow the finger.
func (t *Tracker) Move(points []Point) MoveResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state.ActiveFingers != 1 || len(points) != 1 {
		t.reset()
		return MoveResult{}
	}

	t.state.CurrentX = points[0].X
	t.state.CurrentY = points[0].Y

	t.state.DeltaX = t.state.CurrentX - t.state.StartX
	deltaY := t.state.CurrentY - t.state.StartY

	if t.state.Class == Unclassified {
		if math.Abs(t.state.DeltaX) < math.Abs(deltaY) {
			t.state.Class = Scrolling
		} else {
			t.state.Class = Swiping
		}
	}

	if t.state.Class == Scrolling {
		return MoveResult{}
	}

	return MoveResult{
		PreventDefault: true,
		Follow:         true,
		FollowOffset:   t.state.Base + t.state.DeltaX,
	}
}

// End decides where the surface comes to rest. points holds the contacts
// still down, which is usually empty; the finger count recorded by the last
// start or move is what counts.
func (t *Tracker) End(points []Point) (*Decision, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := t.state
	if s.Class != Swiping || s.DeltaX == 0 || s.ActiveFingers != 1 || s.CurrentX == 0 {
		t.reset()
		return nil, false
	}

	width := t.geom.Width()
	requiredLength := width * t.config.MinSwipeLength / 100
	distance := math.Round(width * t.config.SnapPosition / 100)

	target := s.Base
	outcome := SnapBack

	if math.Abs(s.DeltaX) > requiredLength {
		switch {
		case s.DeltaX < 0 && s.Base >= 0:
			target = s.Base - distance
			outcome = SnapLeft
		case s.DeltaX > 0 && s.Base <= 0:
			target = s.Base + distance
			outcome = SnapRight
		}
	}

	utils.Verbose("swipe: end deltaX=%v required=%v base=%v target=%v (%s)", s.DeltaX, requiredLength, s.Base, target, outcome)

	return &Decision{
		Target:     target,
		Outcome:    outcome,
		Duration:   t.config.AnimationDuration,
		DurationMs: t.config.AnimationDuration.Milliseconds(),
		Easing:     t.config.Easing,
		tracker:    t,
	}, true
}

// Cancel zeroes the finger count and coordinates. DeltaX, the
// classification and the base position are left as they are until the next
// start overwrites them.
func (t *Tracker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.reset()
}

func (t *Tracker) reset() {
	t.state.ActiveFingers = 0
	t.state.StartX = 0
	t.state.StartY = 0
	t.state.CurrentX = 0
	t.state.CurrentY = 0
}
