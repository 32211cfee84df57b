// ABOUTME: Client-side typed failures: argument validation and version incompatibility
// ABOUTME: Server and transport failures surface as jsonrpc.RPCError / jsonrpc.HTTPError

package readsutils

import "fmt"

// ArgumentError reports invalid call arguments. It is raised before any
// network I/O happens.
type ArgumentError struct {
	Method string
	Reason string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid arguments: %s", e.Method, e.Reason)
}

// IncompatibleError reports that the server's semantic version cannot serve
// this client: the major versions differ, or the server's minor version is
// older than the client's.
type IncompatibleError struct {
	Client string
	Server string
	Reason string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("client %s incompatible with server %s: %s", e.Client, e.Server, e.Reason)
}
