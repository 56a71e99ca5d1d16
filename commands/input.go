package commands

import (
	"fmt"
	"time"

	"github.com/mobile-next/pageswipe/swipe"
)

// GestureRequest delivers one canonical event to a remote surface
type GestureRequest struct {
	SurfaceID string          `json:"surfaceId"`
	Kind      swipe.EventKind `json:"kind"`
	Points    []swipe.Point   `json:"points"`
}

// AnimationCompleteRequest confirms the host finished a snap animation
type AnimationCompleteRequest struct {
	SurfaceID  string `json:"surfaceId"`
	DecisionID string `json:"decisionId"`
}

// GestureCommand feeds an event to the surface's tracker
func GestureCommand(req GestureRequest) *CommandResponse {
	session, err := FindSurface(req.SurfaceID)
	if err != nil {
		return NewErrorResponse(err)
	}

	switch req.Kind {
	case swipe.EventStart:
		if err := session.Start(req.Points); err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(session.Info().State)

	case swipe.EventMove:
		reply, err := session.Move(req.Points)
		if err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(reply)

	case swipe.EventEnd:
		reply, err := session.End(req.Points)
		if err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(reply)

	case swipe.EventCancel:
		if err := session.Cancel(); err != nil {
			return NewErrorResponse(err)
		}
		return NewSuccessResponse(session.Info().State)

	default:
		return NewErrorResponse(fmt.Errorf("unknown gesture event kind '%s', expected one of start, move, end, cancel", req.Kind))
	}
}

// AnimationCompleteCommand commits a decision's target as the settled offset
func AnimationCompleteCommand(req AnimationCompleteRequest) *CommandResponse {
	if req.DecisionID == "" {
		return NewErrorResponse(fmt.Errorf("decision ID is required"))
	}

	session, err := FindSurface(req.SurfaceID)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := session.Complete(req.DecisionID); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to complete animation on surface %s: %w", req.SurfaceID, err))
	}

	return NewSuccessResponse(session.Info())
}

func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
