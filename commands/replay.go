package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mobile-next/pageswipe/input"
	"github.com/mobile-next/pageswipe/surface"
	"github.com/mobile-next/pageswipe/swipe"
	"github.com/mobile-next/pageswipe/utils"
)

// DefaultAnimationTimeout bounds how long a replay waits for one snap animation
const DefaultAnimationTimeout = 10 * time.Second

// ReplayRequest drives a virtual surface with a recording.
// With WaitForAnimations every snap animation finishes before the next
// event is delivered; otherwise events follow the recording's timeline and
// may overlap a running animation. Realtime sleeps between events to honour
// the recorded timing.
type ReplayRequest struct {
	Recording         *input.Recording
	Config            swipe.Config
	FrameInterval     time.Duration
	WaitForAnimations bool
	Realtime          bool
	IncludeFrames     bool
}

// ReplayDecision is a decision made during a replay
type ReplayDecision struct {
	Target     float64       `json:"target"`
	Outcome    swipe.Outcome `json:"outcome"`
	DurationMs int64         `json:"durationMs"`
	Easing     string        `json:"easing"`
}

// ReplayStep is the outcome of one delivered event
type ReplayStep struct {
	AtMs           int64           `json:"atMs"`
	Kind           swipe.EventKind `json:"kind"`
	Points         []swipe.Point   `json:"points"`
	PreventDefault bool            `json:"preventDefault,omitempty"`
	FollowOffset   *float64        `json:"followOffset,omitempty"`
	Decision       *ReplayDecision `json:"decision,omitempty"`
}

type ReplayResponse struct {
	Width       float64         `json:"width"`
	StartOffset float64         `json:"startOffset"`
	FinalOffset float64         `json:"finalOffset"`
	Base        float64         `json:"base"`
	Steps       []ReplayStep    `json:"steps"`
	Decisions   int             `json:"decisions"`
	Frames      []surface.Frame `json:"frames,omitempty"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// ReplayCommand runs a recording against a virtual surface
func ReplayCommand(ctx context.Context, req ReplayRequest) *CommandResponse {
	resp, err := replay(ctx, req)
	if err != nil {
		return NewErrorResponse(err)
	}
	return NewSuccessResponse(resp)
}

func replay(ctx context.Context, req ReplayRequest) (*ReplayResponse, error) {
	if req.Recording == nil {
		return nil, fmt.Errorf("recording is required")
	}

	timeline, err := req.Recording.Timeline()
	if err != nil {
		return nil, fmt.Errorf("invalid recording: %w", err)
	}

	virtual := surface.NewVirtual(req.Recording.Width, req.Recording.Offset, surface.WithFrameInterval(req.FrameInterval))
	defer virtual.Stop()

	binding, err := swipe.Bind(virtual, req.Config)
	if err != nil {
		return nil, err
	}

	resp := &ReplayResponse{
		Width:       req.Recording.Width,
		StartOffset: req.Recording.Offset,
		Steps:       make([]ReplayStep, 0, len(timeline)),
		Warnings:    binding.Tracker().Warnings(),
	}

	started := time.Now()
	for _, te := range timeline {
		if req.Realtime {
			if err := sleepUntil(ctx, started.Add(te.At)); err != nil {
				return nil, err
			}
		} else if err := ctx.Err(); err != nil {
			return nil, err
		}

		step := ReplayStep{
			AtMs:   te.At.Milliseconds(),
			Kind:   te.Event.Kind,
			Points: te.Event.Points,
		}

		ev := te.Event
		ev.PreventDefault = func() { step.PreventDefault = true }

		decision := binding.Handle(ev)

		if step.PreventDefault {
			offset := virtual.Offset()
			step.FollowOffset = &offset
		}

		if decision != nil {
			resp.Decisions++
			step.Decision = &ReplayDecision{
				Target:     decision.Target,
				Outcome:    decision.Outcome,
				DurationMs: decision.DurationMs,
				Easing:     decision.Easing,
			}
			utils.Verbose("replay: decision at %s: %s to %v", te.At, decision.Outcome, decision.Target)

			if req.WaitForAnimations {
				if err := waitForAnimation(ctx, virtual); err != nil {
					return nil, err
				}
			}
		}

		resp.Steps = append(resp.Steps, step)
	}

	if err := waitForAnimation(ctx, virtual); err != nil {
		return nil, err
	}

	resp.FinalOffset = virtual.Offset()
	resp.Base = binding.Tracker().State().Base
	if req.IncludeFrames {
		resp.Frames = virtual.Frames()
	}

	return resp, nil
}

func waitForAnimation(ctx context.Context, virtual *surface.Virtual) error {
	waitCtx, cancel := context.WithTimeout(ctx, DefaultAnimationTimeout)
	defer cancel()

	if err := virtual.Wait(waitCtx); err != nil {
		return fmt.Errorf("animation did not finish: %w", err)
	}
	return nil
}

func sleepUntil(ctx context.Context, at time.Time) error {
	d := time.Until(at)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SimulateRequest describes a synthetic single finger drag
type SimulateRequest struct {
	Width      float64 `json:"width"`
	Offset     float64 `json:"offset"`
	X1         float64 `json:"x1"`
	Y1         float64 `json:"y1"`
	X2         float64 `json:"x2"`
	Y2         float64 `json:"y2"`
	DurationMs int64   `json:"durationMs"`
}

// SimulateCommand performs a drag on a virtual surface the way a WebDriver
// swipe request would and reports where the surface comes to rest
func SimulateCommand(ctx context.Context, req SimulateRequest, cfg swipe.Config, frameInterval time.Duration, includeFrames bool) *CommandResponse {
	if req.Width <= 0 {
		return NewErrorResponse(fmt.Errorf("width must be > 0, got %v", req.Width))
	}

	if req.DurationMs < 0 {
		return NewErrorResponse(fmt.Errorf("duration must not be negative, got %dms", req.DurationMs))
	}

	recording := &input.Recording{
		Width:   req.Width,
		Offset:  req.Offset,
		Actions: input.SwipeActions(req.X1, req.Y1, req.X2, req.Y2, msToDuration(req.DurationMs)),
	}

	return ReplayCommand(ctx, ReplayRequest{
		Recording:         recording,
		Config:            cfg,
		FrameInterval:     frameInterval,
		WaitForAnimations: true,
		IncludeFrames:     includeFrames,
	})
}
