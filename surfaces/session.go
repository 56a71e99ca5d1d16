package surfaces

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mobile-next/pageswipe/swipe"
	"github.com/mobile-next/pageswipe/utils"
)

// Session is a surface rendered by a remote host. The host reports the
// surface geometry; the session answers each event with what the host
// should do and keeps undelivered animation confirmations.
type Session struct {
	id      string
	created time.Time

	mu      sync.Mutex
	width   float64
	offset  float64
	tracker *swipe.Tracker
	pending map[string]*swipe.Decision
	closed  bool
}

// MoveReply is returned for move events
type MoveReply struct {
	swipe.MoveResult
}

// EndReply is returned for end events. Decided is false when the gesture
// was discarded.
type EndReply struct {
	Decided    bool          `json:"decided"`
	DecisionID string        `json:"decisionId,omitempty"`
	Target     float64       `json:"target,omitempty"`
	Outcome    swipe.Outcome `json:"outcome,omitempty"`
	DurationMs int64         `json:"durationMs,omitempty"`
	Easing     string        `json:"easing,omitempty"`
}

// Info describes a session
type Info struct {
	ID       string             `json:"id"`
	Width    float64            `json:"width"`
	Offset   float64            `json:"offset"`
	Created  time.Time          `json:"created"`
	Pending  int                `json:"pendingAnimations"`
	State    swipe.GestureState `json:"state"`
	Config   swipe.Config       `json:"config"`
	Warnings []string           `json:"warnings,omitempty"`
}

type sessionGeometry struct {
	s *Session
}

// called with s.mu held by the event methods
func (g sessionGeometry) Width() float64  { return g.s.width }
func (g sessionGeometry) Offset() float64 { return g.s.offset }

func newSession(width, offset float64, cfg swipe.Config) (*Session, error) {
	if width < 0 {
		return nil, fmt.Errorf("width must not be negative, got %v", width)
	}

	s := &Session{
		id:      uuid.NewString(),
		created: time.Now(),
		width:   width,
		offset:  offset,
		pending: make(map[string]*swipe.Decision),
	}

	tracker, err := swipe.NewTracker(sessionGeometry{s: s}, cfg)
	if err != nil {
		return nil, err
	}
	s.tracker = tracker

	return s, nil
}

func (s *Session) ID() string {
	return s.id
}

// Update records new geometry reported by the host. When the offset
// changes outside of a gesture the tracker re-reads it on the next start.
func (s *Session) Update(width, offset *float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	if width != nil {
		if *width < 0 {
			return fmt.Errorf("width must not be negative, got %v", *width)
		}
		s.width = *width
	}

	if offset != nil {
		s.offset = *offset
		s.tracker.InvalidateBase()
	}

	return nil
}

func (s *Session) Start(points []swipe.Point) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	s.tracker.Start(points)
	return nil
}

func (s *Session) Move(points []swipe.Point) (MoveReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return MoveReply{}, err
	}

	res := s.tracker.Move(points)
	if res.Follow {
		s.offset = res.FollowOffset
	}
	return MoveReply{MoveResult: res}, nil
}

func (s *Session) End(points []swipe.Point) (EndReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return EndReply{}, err
	}

	decision, ok := s.tracker.End(points)
	if !ok {
		return EndReply{Decided: false}, nil
	}

	// a new decision supersedes any the host has not confirmed yet
	if n := len(s.pending); n > 0 {
		utils.Verbose("Surface %s: dropping %d unconfirmed decision(s)", s.id, n)
		clear(s.pending)
	}

	id := uuid.NewString()
	s.pending[id] = decision

	return EndReply{
		Decided:    true,
		DecisionID: id,
		Target:     decision.Target,
		Outcome:    decision.Outcome,
		DurationMs: decision.DurationMs,
		Easing:     decision.Easing,
	}, nil
}

func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	s.tracker.Cancel()
	return nil
}

// Complete confirms that the host finished animating to a decision's
// target, which makes that target the settled offset
func (s *Session) Complete(decisionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkOpen(); err != nil {
		return err
	}

	decision, ok := s.pending[decisionID]
	if !ok {
		return fmt.Errorf("unknown or already completed decision: %s", decisionID)
	}
	delete(s.pending, decisionID)

	decision.Complete()
	s.offset = decision.Target
	return nil
}

func (s *Session) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Info{
		ID:       s.id,
		Width:    s.width,
		Offset:   s.offset,
		Created:  s.created,
		Pending:  len(s.pending),
		State:    s.tracker.State(),
		Config:   s.tracker.Config(),
		Warnings: s.tracker.Warnings(),
	}
}

// Close drops pending decisions; later calls on the session fail
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.pending = make(map[string]*swipe.Decision)
}

func (s *Session) checkOpen() error {
	if s.closed {
		return fmt.Errorf("surface %s is closed", s.id)
	}
	return nil
}
