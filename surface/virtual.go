package surface

import (
	"context"
	"sync"
	"time"

	"github.com/mobile-next/pageswipe/utils"
)

const DefaultFrameInterval = 16 * time.Millisecond

// Frame is one rendered animation step
type Frame struct {
	At     time.Duration `json:"-"`
	AtMs   int64         `json:"atMs"`
	Offset float64       `json:"offset"`
}

// Virtual is an in-memory horizontally positioned surface. It applies
// follow offsets directly and plays snap animations on a goroutine,
// stepping once per frame interval.
type Virtual struct {
	width         float64
	frameInterval time.Duration

	mu       sync.Mutex
	offset   float64
	frames   []Frame
	cancel   context.CancelFunc
	done     chan struct{}
	onFrame  func(Frame)
	animated int
}

// Option configures a Virtual surface
type Option func(*Virtual)

// WithFrameInterval sets the animation step
func WithFrameInterval(d time.Duration) Option {
	return func(v *Virtual) {
		if d > 0 {
			v.frameInterval = d
		}
	}
}

// WithFrameObserver registers fn to be called for every rendered frame
func WithFrameObserver(fn func(Frame)) Option {
	return func(v *Virtual) {
		v.onFrame = fn
	}
}

func NewVirtual(width, offset float64, opts ...Option) *Virtual {
	v := &Virtual{
		width:         width,
		offset:        offset,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *Virtual) Width() float64 {
	return v.width
}

func (v *Virtual) Offset() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

func (v *Virtual) ApplyFollowOffset(x float64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.offset = x
}

// Frames returns every frame rendered by animations so far
func (v *Virtual) Frames() []Frame {
	v.mu.Lock()
	defer v.mu.Unlock()
	frames := make([]Frame, len(v.frames))
	copy(frames, v.frames)
	return frames
}

// Animations returns how many animations have been started
func (v *Virtual) Animations() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.animated
}

// AnimateTo eases the surface from its current offset to target. A newer
// animation replaces a running one, whose completion callback is then
// never called. onComplete runs once the target has been reached.
func (v *Virtual) AnimateTo(target float64, duration time.Duration, easing string, onComplete func()) {
	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.animated++

	if duration <= 0 {
		v.offset = v.recordLocked(0, target)
		v.cancel = nil
		v.done = nil
		observer := v.onFrame
		v.mu.Unlock()

		v.notify(observer, Frame{Offset: target})
		if onComplete != nil {
			onComplete()
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	v.cancel = cancel
	v.done = done
	from := v.offset
	interval := v.frameInterval
	v.mu.Unlock()

	go v.run(ctx, done, from, target, duration, interval, easing, onComplete)
}

func (v *Virtual) run(ctx context.Context, done chan struct{}, from, target float64, duration, interval time.Duration, easing string, onComplete func()) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			utils.Verbose("surface: animation to %v stopped", target)
			return

		case <-ticker.C:
			elapsed := time.Since(start)
			progress := float64(elapsed) / float64(duration)
			offset := from + (target-from)*Ease(easing, progress)
			if elapsed >= duration {
				elapsed = duration
				offset = target
			}

			v.mu.Lock()
			if ctx.Err() != nil {
				v.mu.Unlock()
				return
			}
			v.offset = v.recordLocked(elapsed, offset)
			observer := v.onFrame
			finished := elapsed >= duration
			var release context.CancelFunc
			if finished {
				release = v.cancel
				v.cancel = nil
			}
			v.mu.Unlock()

			if release != nil {
				release()
			}

			v.notify(observer, Frame{At: elapsed, AtMs: elapsed.Milliseconds(), Offset: offset})

			if finished {
				if onComplete != nil {
					onComplete()
				}
				return
			}
		}
	}
}

func (v *Virtual) recordLocked(at time.Duration, offset float64) float64 {
	v.frames = append(v.frames, Frame{At: at, AtMs: at.Milliseconds(), Offset: offset})
	return offset
}

func (v *Virtual) notify(observer func(Frame), f Frame) {
	if observer != nil {
		observer(f)
	}
}

// Stop aborts a running animation, leaving the surface where it is. The
// aborted animation's completion callback is not called.
func (v *Virtual) Stop() {
	v.mu.Lock()
	cancel := v.cancel
	done := v.done
	v.cancel = nil
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Wait blocks until the current animation has finished or ctx is done
func (v *Virtual) Wait(ctx context.Context) error {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()

	if done == nil {
		return nil
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
