// ABOUTME: JSON-RPC 1.1 wire envelope types shared by every call
// ABOUTME: Separated for easyjson codegen (zero-reflection decoding on the call path)

//go:generate easyjson -all envelope.go

package jsonrpc

import "encoding/json"

// Version is the JSON-RPC protocol version spoken by default. Version10
// selects the legacy fixed-session-id semantics.
const (
	Version11 = "1.1"
	Version10 = "1.0"
)

// Request is the JSON-RPC request envelope. Params is the ordered sequence of
// positional call arguments, already serialized.
type Request struct {
	Method  string            `json:"method"`
	Params  []json.RawMessage `json:"params"`
	Version string            `json:"version"`
	ID      string            `json:"id"`
}

// Response is the JSON-RPC response envelope. Exactly one of Result and Error
// is meaningful; Result is the ordered sequence of return values.
type Response struct {
	ID     json.RawMessage   `json:"id,omitempty"`
	Result []json.RawMessage `json:"result"`
	Error  *Error            `json:"error"`
}

// Error is the server-reported failure object inside a Response.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Name    string          `json:"name,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}
