package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mobile-next/pageswipe/utils"
)

// HandlerFunc is the signature for JSON-RPC method handlers
type HandlerFunc func(ctx context.Context, params json.RawMessage) (interface{}, error)

// InvalidParamsError is returned by handlers whose params are missing or
// malformed; it is reported with ErrCodeInvalidParams
type InvalidParamsError struct {
	Message string
}

func (e *InvalidParamsError) Error() string {
	return e.Message
}

// errorCode maps a handler error to its JSON-RPC code and title
func errorCode(err error) (int, string) {
	var paramsErr *InvalidParamsError
	if errors.As(err, &paramsErr) {
		return ErrCodeInvalidParams, errTitleInvalidParams
	}
	return ErrCodeServerError, errTitleServer
}

// shutdownHooks run when a client asks the server to stop
var shutdownHooks = utils.NewShutdownHook()

// GetMethodRegistry returns a map of method names to handler functions
// This is used by both the HTTP server and embedded clients
func GetMethodRegistry() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"surface_create":     handleSurfaceCreate,
		"surface_update":     handleSurfaceUpdate,
		"surface_info":       handleSurfaceInfo,
		"surface_close":      handleSurfaceClose,
		"surfaces_list":      handleSurfacesList,
		"gesture_start":      handleGestureStart,
		"gesture_move":       handleGestureMove,
		"gesture_end":        handleGestureEnd,
		"gesture_cancel":     handleGestureCancel,
		"animation_complete": handleAnimationComplete,
		"replay":             handleReplay,
		"simulate":           handleSimulate,
		"server.shutdown":    handleShutdown,
	}
}

// Execute dispatches a method call using the registry
// This is the main entry point for embedded clients
func Execute(ctx context.Context, method string, params json.RawMessage) (interface{}, error) {
	registry := GetMethodRegistry()

	handler, exists := registry[method]
	if !exists {
		return nil, fmt.Errorf("method not found: %s", method)
	}

	return handler(ctx, params)
}

// RegisterShutdownHook adds a cleanup step run by server.shutdown
func RegisterShutdownHook(name string, fn func() error) {
	shutdownHooks.Register(name, fn)
}
