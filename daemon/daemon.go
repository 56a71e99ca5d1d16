package daemon

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/mobile-next/pageswipe/server"
	"github.com/sevlyar/go-daemon"
)

// ChildEnvVar is set to "1" in the environment of the detached server
const ChildEnvVar = "PAGESWIPE_DAEMON_CHILD"

const rpcTimeout = 10 * time.Second

// Daemonize re-executes the current command line detached from the
// terminal. It returns true in the parent once the child is running; the
// child sees false and carries on serving.
func Daemonize() (bool, error) {
	dctx := &daemon.Context{
		WorkDir: "/",
		Umask:   027,
		Args:    os.Args,
		Env:     append(os.Environ(), ChildEnvVar+"=1"),
	}

	child, err := dctx.Reborn()
	if err != nil {
		return false, fmt.Errorf("failed to daemonize: %w", err)
	}

	return child != nil, nil
}

func IsChild() bool {
	return os.Getenv(ChildEnvVar) == "1"
}

// ServerURL turns a listen address ("12100", ":12100", "host:port") into
// the base URL of a local server
func ServerURL(addr string) string {
	if _, err := strconv.Atoi(addr); err == nil {
		addr = ":" + addr
	}

	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}

	return "http://" + addr
}

// KillServer asks the server listening on addr to shut down
func KillServer(addr string) error {
	_, err := call(addr, "server.shutdown")
	return err
}

// call sends a parameterless JSON-RPC request and returns its result
func call(addr, method string) (interface{}, error) {
	baseURL := ServerURL(addr)

	body, err := json.Marshal(server.JSONRPCRequest{JSONRPC: "2.0", Method: method, ID: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	client := &http.Client{Timeout: rpcTimeout}
	resp, err := client.Post(baseURL+"/rpc", "application/json", bytes.NewReader(body))
	if err != nil {
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil, fmt.Errorf("server is not running on %s", baseURL)
		}
		return nil, fmt.Errorf("failed to reach %s: %w", baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: unexpected HTTP status %s", method, resp.Status)
	}

	var rpcResp server.JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, fmt.Errorf("%s: bad response: %w", method, err)
	}

	if rpcResp.Error != nil {
		return nil, fmt.Errorf("%s rejected: %v", method, rpcResp.Error)
	}

	return rpcResp.Result, nil
}
