package daemon

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mobile-next/pageswipe/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerURL(t *testing.T) {
	tests := []struct {
		addr     string
		expected string
	}{
		{"12100", "http://localhost:12100"},
		{":12100", "http://localhost:12100"},
		{"localhost:12100", "http://localhost:12100"},
		{"0.0.0.0:9000", "http://0.0.0.0:9000"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			assert.Equal(t, tt.expected, ServerURL(tt.addr))
		})
	}
}

func TestIsChild(t *testing.T) {
	t.Setenv(ChildEnvVar, "")
	assert.False(t, IsChild())

	t.Setenv(ChildEnvVar, "1")
	assert.True(t, IsChild())
}

func TestKillServer(t *testing.T) {
	var method string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req server.JSONRPCRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		method = req.Method
		_ = json.NewEncoder(w).Encode(server.JSONRPCResponse{JSONRPC: "2.0", Result: map[string]string{"status": "ok"}, ID: req.ID})
	}))
	defer ts.Close()

	require.NoError(t, KillServer(ts.Listener.Addr().String()))
	assert.Equal(t, "server.shutdown", method)
}

func TestKillServer_RPCError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(server.JSONRPCResponse{
			JSONRPC: "2.0",
			Error:   map[string]interface{}{"code": -32601, "message": "Method not found"},
			ID:      1,
		})
	}))
	defer ts.Close()

	assert.Error(t, KillServer(ts.Listener.Addr().String()))
}

func TestKillServer_NotRunning(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	addr := ts.Listener.Addr().String()
	ts.Close()

	err := KillServer(addr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not running")
}
