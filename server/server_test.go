package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/surfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	registry, err := surfaces.NewRegistry(16)
	if err != nil {
		fmt.Printf("Failed to create surface registry: %v\n", err)
		os.Exit(1)
	}
	commands.SetRegistry(registry)

	code := m.Run()

	registry.CleanupAll()
	os.Exit(code)
}

func newTestHTTPServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(NewHandler(false))
	t.Cleanup(server.Close)
	return server
}

func postRPC(t *testing.T, url string, payload interface{}) JSONRPCResponse {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url+"/rpc", "application/json", bytes.NewBuffer(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var jsonResp JSONRPCResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&jsonResp))
	return jsonResp
}

func call(t *testing.T, url, method string, params interface{}) map[string]interface{} {
	t.Helper()

	resp := postRPC(t, url, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	})
	require.Nil(t, resp.Error, "unexpected error from %s: %v", method, resp.Error)

	result, ok := resp.Result.(map[string]interface{})
	require.True(t, ok, "Expected result to be map, got %T", resp.Result)
	return result
}

func TestRootEndpoint(t *testing.T) {
	server := newTestHTTPServer(t)

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode)

	var data map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&data))
	assert.Equal(t, "ok", data["status"])
}

func TestRPCEndpointMethods(t *testing.T) {
	server := newTestHTTPServer(t)

	resp, err := http.Get(server.URL + "/rpc")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestJSONRPCValidation(t *testing.T) {
	server := newTestHTTPServer(t)

	tests := []struct {
		name         string
		body         []byte
		expectedCode int
		expectedData string
	}{
		{
			name:         "empty body",
			body:         []byte(""),
			expectedCode: ErrCodeParseError,
			expectedData: errMsgParseError,
		},
		{
			name:         "invalid jsonrpc version",
			body:         []byte(`{"jsonrpc":"1.0","method":"surfaces_list","id":1}`),
			expectedCode: ErrCodeInvalidRequest,
			expectedData: errMsgInvalidJSONRPC,
		},
		{
			name:         "missing id",
			body:         []byte(`{"jsonrpc":"2.0","method":"surfaces_list","params":{}}`),
			expectedCode: ErrCodeInvalidRequest,
			expectedData: errMsgIDRequired,
		},
		{
			name:         "missing method",
			body:         []byte(`{"jsonrpc":"2.0","id":1}`),
			expectedCode: ErrCodeInvalidRequest,
			expectedData: errMsgMethodRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(server.URL+"/rpc", "application/json", bytes.NewBuffer(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()

			var jsonResp JSONRPCResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&jsonResp))

			assert.Equal(t, "2.0", jsonResp.JSONRPC)
			errorMap, ok := jsonResp.Error.(map[string]interface{})
			require.True(t, ok, "Expected error to be map, got %T", jsonResp.Error)

			assert.Equal(t, float64(tt.expectedCode), errorMap["code"])
			assert.Equal(t, tt.expectedData, errorMap["data"])
		})
	}
}

func TestMethodNotFound(t *testing.T) {
	server := newTestHTTPServer(t)

	resp := postRPC(t, server.URL, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "unknown_method",
		"id":      1,
	})

	errorMap, ok := resp.Error.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(ErrCodeMethodNotFound), errorMap["code"])
	assert.Equal(t, "Method 'unknown_method' not found", errorMap["data"])
}

func TestMalformedParams(t *testing.T) {
	server := newTestHTTPServer(t)

	resp := postRPC(t, server.URL, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "gesture_move",
		"params":  map[string]interface{}{"surfaceId": "x", "points": "not-a-list"},
		"id":      1,
	})

	errorMap, ok := resp.Error.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(ErrCodeInvalidParams), errorMap["code"])
}

func TestSurfaceInfoRequiredParams(t *testing.T) {
	server := newTestHTTPServer(t)

	resp := postRPC(t, server.URL, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "surface_info",
		"id":      1,
	})

	assert.Equal(t, float64(1), resp.ID)
	errorMap, ok := resp.Error.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(ErrCodeInvalidParams), errorMap["code"])
	assert.Equal(t, errTitleInvalidParams, errorMap["message"])
	assert.Equal(t, "'params' is required with fields: surfaceId", errorMap["data"])
}

func TestGestureRoundTrip(t *testing.T) {
	server := newTestHTTPServer(t)

	created := call(t, server.URL, "surface_create", map[string]interface{}{"width": 1000, "offset": 0})
	surfaceID, ok := created["surfaceId"].(string)
	require.True(t, ok)
	defer call(t, server.URL, "surface_close", map[string]interface{}{"surfaceId": surfaceID})

	point := func(x, y float64) []map[string]float64 {
		return []map[string]float64{{"x": x, "y": y}}
	}

	call(t, server.URL, "gesture_start", map[string]interface{}{"surfaceId": surfaceID, "points": point(500, 300)})

	moved := call(t, server.URL, "gesture_move", map[string]interface{}{"surfaceId": surfaceID, "points": point(250, 310)})
	assert.Equal(t, true, moved["preventDefault"])
	assert.Equal(t, true, moved["follow"])
	assert.Equal(t, float64(-250), moved["followOffset"])

	ended := call(t, server.URL, "gesture_end", map[string]interface{}{"surfaceId": surfaceID, "points": []interface{}{}})
	assert.Equal(t, true, ended["decided"])
	assert.Equal(t, float64(-850), ended["target"])
	assert.Equal(t, "snap_left", ended["outcome"])

	decisionID, ok := ended["decisionId"].(string)
	require.True(t, ok)

	call(t, server.URL, "animation_complete", map[string]interface{}{"surfaceId": surfaceID, "decisionId": decisionID})

	info := call(t, server.URL, "surface_info", map[string]interface{}{"surfaceId": surfaceID})
	assert.Equal(t, float64(-850), info["offset"])
	state, ok := info["state"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(-850), state["base"])

	// a decision can only be confirmed once
	resp := postRPC(t, server.URL, map[string]interface{}{
		"jsonrpc": "2.0",
		"method":  "animation_complete",
		"params":  map[string]interface{}{"surfaceId": surfaceID, "decisionId": decisionID},
		"id":      2,
	})
	assert.NotNil(t, resp.Error)
}

func TestSimulateMethod(t *testing.T) {
	server := newTestHTTPServer(t)

	result := call(t, server.URL, "simulate", map[string]interface{}{
		"width":      1000,
		"x1":         800,
		"y1":         300,
		"x2":         200,
		"y2":         300,
		"durationMs": 100,
	})

	assert.Equal(t, float64(-850), result["finalOffset"])
	assert.Equal(t, float64(1), result["decisions"])
}

func TestCORSPreflight(t *testing.T) {
	server := httptest.NewServer(NewHandler(true))
	defer server.Close()

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/rpc", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestNormalizeAddr(t *testing.T) {
	addr, err := normalizeAddr("12100")
	require.NoError(t, err)
	assert.Equal(t, ":12100", addr)

	addr, err = normalizeAddr("localhost:12100")
	require.NoError(t, err)
	assert.Equal(t, "localhost:12100", addr)

	_, err = normalizeAddr("not-a-port")
	assert.Error(t, err)
}

func TestExecute(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	result, err := Execute(ctx, "surfaces_list", nil)
	require.NoError(t, err)
	assert.NotNil(t, result)

	_, err = Execute(ctx, "nope", nil)
	assert.Error(t, err)
}
