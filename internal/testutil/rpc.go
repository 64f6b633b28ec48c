package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RPCRequest is a decoded JSON-RPC request seen by an RPCServer.
type RPCRequest struct {
	ID     json.RawMessage   `json:"id"`
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
}

// RPCError is a JSON-RPC error object, including the revert data field.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RPCHandler answers one method. Returning a non-nil *RPCError sends an
// error response.
type RPCHandler func(params []json.RawMessage) (any, *RPCError)

// RPCServer is an httptest JSON-RPC node answering from per-method handlers.
type RPCServer struct {
	*httptest.Server

	mu       sync.Mutex
	handlers map[string]RPCHandler
	Requests []RPCRequest
}

// NewRPCServer starts a server and closes it when t finishes.
func NewRPCServer(t *testing.T, handlers map[string]RPCHandler) *RPCServer {
	t.Helper()
	s := &RPCServer{handlers: handlers}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *RPCServer) serve(w http.ResponseWriter, r *http.Request) {
	var req RPCRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.Requests = append(s.Requests, req)
	h, ok := s.handlers[req.Method]
	s.mu.Unlock()

	resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
	switch {
	case !ok:
		resp["error"] = RPCError{Code: -32601, Message: "method not found"}
	default:
		result, rpcErr := h(req.Params)
		if rpcErr != nil {
			resp["error"] = rpcErr
		} else {
			resp["result"] = result
		}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp) //nolint:errcheck
}

// Methods lists the methods received so far, in order.
func (s *RPCServer) Methods() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Requests))
	for i, r := range s.Requests {
		out[i] = r.Method
	}
	return out
}
