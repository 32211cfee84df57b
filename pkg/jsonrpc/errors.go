// ABOUTME: Typed transport failures: server-reported RPC errors vs unusable HTTP responses
// ABOUTME: Both carry the method name and raw HTTP status line for triage

package jsonrpc

import (
	"encoding/json"
	"fmt"
)

// RPCError is an application-level failure: the remote service executed the
// call and reported a structured error object.
type RPCError struct {
	Method  string
	Code    int
	Message string
	Name    string
	Data    json.RawMessage
	Status  string // raw HTTP status line, e.g. "500 Internal Server Error"
}

func (e *RPCError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %d: %s", e.Method, e.Name, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: server error %d: %s", e.Method, e.Code, e.Message)
}

// HTTPError is a transport-level failure: no interpretable JSON-RPC response
// was obtained. Status is the raw HTTP status line when a response arrived at
// all, and Err the underlying cause when one exists.
type HTTPError struct {
	Method string
	Status string
	Err    error
}

func (e *HTTPError) Error() string {
	switch {
	case e.Status != "" && e.Err != nil:
		return fmt.Sprintf("%s: http %s: %v", e.Method, e.Status, e.Err)
	case e.Status != "":
		return fmt.Sprintf("%s: http %s", e.Method, e.Status)
	default:
		return fmt.Sprintf("%s: %v", e.Method, e.Err)
	}
}

func (e *HTTPError) Unwrap() error { return e.Err }
