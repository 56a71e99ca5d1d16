package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/input"
	"github.com/mobile-next/pageswipe/swipe"
	"github.com/mobile-next/pageswipe/utils"
)

// SurfaceParams identifies a surface
type SurfaceParams struct {
	SurfaceID string `json:"surfaceId"`
}

// GestureParams carries the contact points of one event
type GestureParams struct {
	SurfaceID string        `json:"surfaceId"`
	Points    []swipe.Point `json:"points"`
}

// ReplayParams carries a recording inline
type ReplayParams struct {
	Recording      *input.Recording `json:"recording"`
	Wait           bool             `json:"wait,omitempty"`
	Frames         bool             `json:"frames,omitempty"`
	MinSwipeLength float64          `json:"minSwipeLength,omitempty"`
	SnapPosition   float64          `json:"snapPosition,omitempty"`
}

type SimulateParams struct {
	commands.SimulateRequest
	Frames bool `json:"frames,omitempty"`
}

func decodeParams(params json.RawMessage, v interface{}, fields string) error {
	if len(params) == 0 {
		return &InvalidParamsError{Message: fmt.Sprintf("'params' is required with fields: %s", fields)}
	}

	if err := json.Unmarshal(params, v); err != nil {
		return &InvalidParamsError{Message: fmt.Sprintf("invalid parameters: %v. Expected fields: %s", err, fields)}
	}

	return nil
}

func responseData(response *commands.CommandResponse) (interface{}, error) {
	if response.Status == "error" {
		return nil, fmt.Errorf("%s", response.Error)
	}
	return response.Data, nil
}

func handleSurfaceCreate(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req commands.SurfaceCreateRequest
	if err := decodeParams(params, &req, "width, offset"); err != nil {
		return nil, err
	}

	return responseData(commands.SurfaceCreateCommand(req))
}

func handleSurfaceUpdate(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req commands.SurfaceUpdateRequest
	if err := decodeParams(params, &req, "surfaceId, width, offset"); err != nil {
		return nil, err
	}

	return responseData(commands.SurfaceUpdateCommand(req))
}

func handleSurfaceInfo(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req SurfaceParams
	if err := decodeParams(params, &req, "surfaceId"); err != nil {
		return nil, err
	}

	return responseData(commands.SurfaceInfoCommand(req.SurfaceID))
}

func handleSurfaceClose(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req SurfaceParams
	if err := decodeParams(params, &req, "surfaceId"); err != nil {
		return nil, err
	}

	if _, err := responseData(commands.SurfaceCloseCommand(req.SurfaceID)); err != nil {
		return nil, err
	}
	return okResponse, nil
}

func handleSurfacesList(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return responseData(commands.SurfacesListCommand())
}

func handleGesture(kind swipe.EventKind) HandlerFunc {
	return func(ctx context.Context, params json.RawMessage) (interface{}, error) {
		var req GestureParams
		if err := decodeParams(params, &req, "surfaceId, points"); err != nil {
			return nil, err
		}

		return responseData(commands.GestureCommand(commands.GestureRequest{
			SurfaceID: req.SurfaceID,
			Kind:      kind,
			Points:    req.Points,
		}))
	}
}

var (
	handleGestureStart  = handleGesture(swipe.EventStart)
	handleGestureMove   = handleGesture(swipe.EventMove)
	handleGestureEnd    = handleGesture(swipe.EventEnd)
	handleGestureCancel = handleGesture(swipe.EventCancel)
)

func handleAnimationComplete(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req commands.AnimationCompleteRequest
	if err := decodeParams(params, &req, "surfaceId, decisionId"); err != nil {
		return nil, err
	}

	return responseData(commands.AnimationCompleteCommand(req))
}

func handleReplay(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req ReplayParams
	if err := decodeParams(params, &req, "recording"); err != nil {
		return nil, err
	}

	if req.Recording == nil {
		return nil, &InvalidParamsError{Message: "'recording' is required"}
	}

	cfg := commands.DefaultSwipeConfig()
	if req.MinSwipeLength != 0 {
		cfg.MinSwipeLength = req.MinSwipeLength
	}
	if req.SnapPosition != 0 {
		cfg.SnapPosition = req.SnapPosition
	}

	return responseData(commands.ReplayCommand(ctx, commands.ReplayRequest{
		Recording:         req.Recording,
		Config:            cfg,
		FrameInterval:     commands.DefaultFrameInterval(),
		WaitForAnimations: req.Wait,
		IncludeFrames:     req.Frames,
	}))
}

func handleSimulate(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var req SimulateParams
	if err := decodeParams(params, &req, "width, x1, y1, x2, y2"); err != nil {
		return nil, err
	}

	return responseData(commands.SimulateCommand(ctx, req.SimulateRequest, commands.DefaultSwipeConfig(), commands.DefaultFrameInterval(), req.Frames))
}

func handleShutdown(ctx context.Context, params json.RawMessage) (interface{}, error) {
	utils.Info("Shutdown requested")

	// let the response go out before the listener closes
	go func() {
		if err := shutdownHooks.Shutdown(); err != nil {
			utils.Error("Shutdown failed: %v", err)
		}
	}()

	return okResponse, nil
}
