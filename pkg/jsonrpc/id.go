// ABOUTME: Request id assignment: fresh ULID per call, or one session id under protocol 1.0
// ABOUTME: crypto/rand entropy keeps per-call ids safe for concurrent callers

package jsonrpc

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// newID returns a fresh random request id.
func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// nextID picks the request id for a call. Protocol 1.0 reuses a single
// client-scoped session id, assigned on first use; every other protocol
// version gets a fresh id per call.
func (c *Client) nextID() string {
	if c.version != Version10 {
		return newID()
	}
	c.sessionOnce.Do(func() {
		c.sessionID = newID()
	})
	return c.sessionID
}
