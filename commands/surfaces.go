package commands

import (
	"fmt"
	"time"

	"github.com/mobile-next/pageswipe/surface"
	"github.com/mobile-next/pageswipe/swipe"
)

// SurfaceCreateRequest describes a new remote surface. Zero values for the
// configuration fields fall back to the process defaults.
type SurfaceCreateRequest struct {
	Width          float64 `json:"width"`
	Offset         float64 `json:"offset"`
	MinSwipeLength float64 `json:"minSwipeLength,omitempty"`
	SnapPosition   float64 `json:"snapPosition,omitempty"`
	DurationMs     *int64  `json:"durationMs,omitempty"`
	Easing         string  `json:"easing,omitempty"`
}

type SurfaceCreateResponse struct {
	SurfaceID string   `json:"surfaceId"`
	Warnings  []string `json:"warnings,omitempty"`
}

// SurfaceUpdateRequest reports new geometry for a surface. Nil fields are left unchanged.
type SurfaceUpdateRequest struct {
	SurfaceID string   `json:"surfaceId"`
	Width     *float64 `json:"width,omitempty"`
	Offset    *float64 `json:"offset,omitempty"`
}

var (
	defaultSwipeConfig   = swipe.DefaultConfig()
	defaultFrameInterval = surface.DefaultFrameInterval
)

// SetDefaultSwipeConfig sets the configuration new surfaces start from
func SetDefaultSwipeConfig(cfg swipe.Config) {
	defaultSwipeConfig = cfg
}

// DefaultSwipeConfig returns the configuration new surfaces start from
func DefaultSwipeConfig() swipe.Config {
	return defaultSwipeConfig
}

// SetDefaultFrameInterval sets the frame interval of virtual surfaces used by replays
func SetDefaultFrameInterval(interval time.Duration) {
	if interval > 0 {
		defaultFrameInterval = interval
	}
}

func DefaultFrameInterval() time.Duration {
	return defaultFrameInterval
}

func (req SurfaceCreateRequest) swipeConfig() swipe.Config {
	cfg := defaultSwipeConfig
	if req.MinSwipeLength != 0 {
		cfg.MinSwipeLength = req.MinSwipeLength
	}
	if req.SnapPosition != 0 {
		cfg.SnapPosition = req.SnapPosition
	}
	if req.DurationMs != nil {
		cfg.AnimationDuration = msToDuration(*req.DurationMs)
	}
	if req.Easing != "" {
		cfg.Easing = req.Easing
	}
	return cfg
}

// SurfaceCreateCommand registers a new remote surface
func SurfaceCreateCommand(req SurfaceCreateRequest) *CommandResponse {
	registry := GetRegistry()
	if registry == nil {
		return NewErrorResponse(fmt.Errorf("surface registry is not initialized"))
	}

	session, err := registry.Create(req.Width, req.Offset, req.swipeConfig())
	if err != nil {
		return NewErrorResponse(fmt.Errorf("failed to create surface: %w", err))
	}

	return NewSuccessResponse(SurfaceCreateResponse{
		SurfaceID: session.ID(),
		Warnings:  session.Info().Warnings,
	})
}

// SurfaceUpdateCommand records geometry reported by the host
func SurfaceUpdateCommand(req SurfaceUpdateRequest) *CommandResponse {
	session, err := FindSurface(req.SurfaceID)
	if err != nil {
		return NewErrorResponse(err)
	}

	if err := session.Update(req.Width, req.Offset); err != nil {
		return NewErrorResponse(fmt.Errorf("failed to update surface %s: %w", req.SurfaceID, err))
	}

	return NewSuccessResponse(session.Info())
}

// SurfaceInfoCommand returns the state of a surface
func SurfaceInfoCommand(surfaceID string) *CommandResponse {
	session, err := FindSurface(surfaceID)
	if err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(session.Info())
}

// SurfaceCloseCommand forgets a surface
func SurfaceCloseCommand(surfaceID string) *CommandResponse {
	registry := GetRegistry()
	if registry == nil {
		return NewErrorResponse(fmt.Errorf("surface registry is not initialized"))
	}

	if err := registry.Remove(surfaceID); err != nil {
		return NewErrorResponse(err)
	}

	return NewSuccessResponse(map[string]interface{}{
		"message": fmt.Sprintf("Closed surface %s", surfaceID),
	})
}

// SurfacesListCommand lists every registered surface
func SurfacesListCommand() *CommandResponse {
	registry := GetRegistry()
	if registry == nil {
		return NewErrorResponse(fmt.Errorf("surface registry is not initialized"))
	}

	return NewSuccessResponse(registry.List())
}
