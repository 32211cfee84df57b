// ABOUTME: JSON-RPC 1.1 over HTTP POST: one request, one response, one outcome
// ABOUTME: Classifies replies into success, server-reported RPCError, or HTTPError

package jsonrpc

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/mailru/easyjson"
	"golang.org/x/net/http2"

	"github.com/ugswork/ReadsUtils/internal/log"
)

const (
	defaultContentType = "application/json"
	defaultTimeout     = 1800 * time.Second

	// Methods under the reserved "system." prefix never carry a JSON-RPC
	// response body worth parsing.
	systemPrefix = "system."
)

// TokenProvider supplies the bearer token attached to authenticated calls.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Client issues JSON-RPC calls against a single service URL. The URL, fixed
// headers, and protocol version are immutable after construction; a Client is
// safe for concurrent use except under protocol 1.0, where all calls share one
// session id and single-caller use is assumed.
type Client struct {
	url         string
	headers     map[string]string
	contentType string
	version     string
	tokens      TokenProvider
	httpClient  *http.Client

	sessionOnce sync.Once
	sessionID   string
}

// Option configures a Client.
type Option func(*Client)

// WithHeaders sets fixed headers sent on every request (tracing tag, metadata,
// error destination). Later options override earlier values per key.
func WithHeaders(h map[string]string) Option {
	return func(c *Client) {
		for k, v := range h {
			c.headers[k] = v
		}
	}
}

// WithTimeout bounds the whole HTTP round trip of every call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithProtocolVersion selects the JSON-RPC protocol version tag. Version10
// switches to the fixed-session-id mode; anything else behaves as Version11.
func WithProtocolVersion(v string) Option {
	return func(c *Client) { c.version = v }
}

// WithContentType overrides the request content type.
func WithContentType(ct string) Option {
	return func(c *Client) { c.contentType = ct }
}

// WithTokenProvider attaches bearer authorization to every call.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// NewClient returns a Client for the given service URL.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:         url,
		headers:     make(map[string]string),
		contentType: defaultContentType,
		version:     Version11,
		httpClient:  newHTTPClient(defaultTimeout),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// newHTTPClient builds the underlying HTTP client: sane connection limits,
// TLS 1.2 minimum, HTTP/2 enabled, proxy from environment.
func newHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		TLSHandshakeTimeout: 10 * time.Second,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
	}
	if err := http2.ConfigureTransport(t); err != nil {
		log.Warn("http2 unavailable, continuing with http/1.1", "err", err)
	}
	return &http.Client{Timeout: timeout, Transport: t}
}

// Call invokes method with the given ordered positional params and unmarshals
// the response's return values into results, in order. A 2xx response with an
// empty body is a notification reply: results are left untouched and Call
// returns nil.
//
// Failures are *RPCError (the service executed the call and reported a
// structured error) or *HTTPError (no interpretable JSON-RPC response).
func (c *Client) Call(ctx context.Context, method string, params []any, results ...any) error {
	req := Request{
		Method:  method,
		Params:  make([]json.RawMessage, 0, len(params)),
		Version: c.version,
		ID:      c.nextID(),
	}
	for i, p := range params {
		raw, err := json.Marshal(p)
		if err != nil {
			return &HTTPError{Method: method, Err: fmt.Errorf("marshaling param %d: %w", i, err)}
		}
		req.Params = append(req.Params, raw)
	}

	body, err := easyjson.Marshal(req)
	if err != nil {
		return &HTTPError{Method: method, Err: fmt.Errorf("marshaling request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return &HTTPError{Method: method, Err: fmt.Errorf("building request: %w", err)}
	}
	httpReq.Header.Set("Content-Type", c.contentType)
	httpReq.Header.Set("Accept", "application/json")
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return &HTTPError{Method: method, Err: fmt.Errorf("resolving auth token: %w", err)}
		}
		httpReq.Header.Set("Authorization", token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return &HTTPError{Method: method, Err: err}
	}
	defer resp.Body.Close()

	log.Debug("rpc call", "method", method, "id", req.ID, "status", resp.Status)

	return c.classify(method, resp, results)
}

// classify turns an HTTP response into the caller-visible outcome per the
// JSON-RPC 1.1-over-HTTP rules this service family speaks.
func (c *Client) classify(method string, resp *http.Response, results []any) error {
	ok := resp.StatusCode >= 200 && resp.StatusCode < 300

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &HTTPError{Method: method, Status: resp.Status, Err: err}
	}

	if ok && strings.HasPrefix(method, systemPrefix) {
		// Reserved methods; body is not a JSON-RPC response object.
		return nil
	}
	if ok && len(bytes.TrimSpace(data)) == 0 {
		// Notification reply: no result, no error.
		return nil
	}

	// Servers encode structured errors as JSON even on non-2xx statuses.
	jsonBody := strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json")
	if !ok && !jsonBody {
		return &HTTPError{Method: method, Status: resp.Status}
	}

	var rpcResp Response
	if err := easyjson.Unmarshal(data, &rpcResp); err != nil {
		return &HTTPError{Method: method, Status: resp.Status, Err: fmt.Errorf("parsing response: %w", err)}
	}

	if rpcResp.Error != nil {
		return &RPCError{
			Method:  method,
			Code:    rpcResp.Error.Code,
			Message: rpcResp.Error.Message,
			Name:    rpcResp.Error.Name,
			Data:    rpcResp.Error.Data,
			Status:  resp.Status,
		}
	}
	if !ok {
		// Non-2xx JSON body without an error member is still unusable.
		return &HTTPError{Method: method, Status: resp.Status}
	}

	for i, dst := range results {
		if i >= len(rpcResp.Result) {
			break
		}
		if err := json.Unmarshal(rpcResp.Result[i], dst); err != nil {
			return &HTTPError{Method: method, Status: resp.Status, Err: fmt.Errorf("unmarshaling result %d: %w", i, err)}
		}
	}
	return nil
}
