// ABOUTME: Typed client for the ReadsUtils JSON-RPC service
// ABOUTME: Thin callers over pkg/jsonrpc; construction requires a working auth token

package readsutils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ugswork/ReadsUtils/internal/config"
	"github.com/ugswork/ReadsUtils/pkg/jsonrpc"
)

// serviceName prefixes every wire method, "ReadsUtils.validateFASTQ" style.
const serviceName = "ReadsUtils"

// construction-time token probe bound; calls use the configured call timeout.
const tokenProbeTimeout = 60 * time.Second

// TokenProvider supplies the bearer token attached to every call.
type TokenProvider = jsonrpc.TokenProvider

// Client calls the ReadsUtils service. All methods are synchronous and
// blocking; every call is one HTTP round trip with no retries at this layer.
type Client struct {
	rpc *jsonrpc.Client
}

type clientConfig struct {
	httpClient      *http.Client
	timeout         time.Duration
	protocolVersion string
	contentType     string
	userAgent       string
}

// Option configures a Client.
type Option func(*clientConfig)

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithTimeout overrides the whole-request timeout (default: KBRPC_TIMEOUT
// seconds, or 1800s).
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.timeout = d }
}

// WithProtocolVersion selects the JSON-RPC protocol version tag. The 1.0 mode
// reuses one session id for every call and is not meant for concurrent use.
func WithProtocolVersion(v string) Option {
	return func(c *clientConfig) { c.protocolVersion = v }
}

// WithContentType overrides the request content type.
func WithContentType(ct string) Option {
	return func(c *clientConfig) { c.contentType = ct }
}

// WithUserAgent sets a User-Agent header on every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) { c.userAgent = ua }
}

// New returns a Client for the service at serviceURL. Every operation
// requires authentication, so construction fails when tokens is nil or cannot
// produce a token. Call settings (tracing tag, metadata, error destination,
// timeout) come from KBRPC_* environment variables and the optional
// KBRPC_CONFIG file.
func New(serviceURL string, tokens TokenProvider, opts ...Option) (*Client, error) {
	if serviceURL == "" {
		return nil, errors.New("readsutils: service URL is required")
	}
	if tokens == nil {
		return nil, errors.New("readsutils: a token provider is required")
	}

	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	settings, err := config.Resolve()
	if err != nil {
		return nil, fmt.Errorf("readsutils: %w", err)
	}
	if cfg.timeout == 0 {
		cfg.timeout = settings.Timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), tokenProbeTimeout)
	defer cancel()
	tok, err := tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("readsutils: resolving auth token: %w", err)
	}
	if tok == "" {
		return nil, errors.New("readsutils: auth token is empty")
	}

	headers := map[string]string{
		"Kbrpc-Tag": settings.Tag,
	}
	if settings.Metadata != "" {
		headers["Kbrpc-Metadata"] = settings.Metadata
	}
	if settings.ErrorDest != "" {
		headers["Kbrpc-Errordest"] = settings.ErrorDest
	}
	if cfg.userAgent != "" {
		headers["User-Agent"] = cfg.userAgent
	}

	rpcOpts := []jsonrpc.Option{
		jsonrpc.WithHeaders(headers),
		jsonrpc.WithTimeout(cfg.timeout),
		jsonrpc.WithTokenProvider(tokens),
	}
	if cfg.protocolVersion != "" {
		rpcOpts = append(rpcOpts, jsonrpc.WithProtocolVersion(cfg.protocolVersion))
	}
	if cfg.contentType != "" {
		rpcOpts = append(rpcOpts, jsonrpc.WithContentType(cfg.contentType))
	}
	if cfg.httpClient != nil {
		rpcOpts = append(rpcOpts, jsonrpc.WithHTTPClient(cfg.httpClient))
	}

	return &Client{rpc: jsonrpc.NewClient(serviceURL, rpcOpts...)}, nil
}

// method builds the namespaced wire method name.
func method(op string) string {
	return serviceName + "." + op
}

// ValidateFASTQ checks FASTQ files on the service's scratch volume, one
// result per input in order.
func (c *Client) ValidateFASTQ(ctx context.Context, params []ValidateFASTQParams) ([]ValidateFASTQResult, error) {
	if err := validateFASTQArgs(params); err != nil {
		return nil, err
	}
	var out []ValidateFASTQResult
	if err := c.rpc.Call(ctx, method(methodValidateFASTQ), []any{params}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadReads stores a reads library and returns its workspace reference.
func (c *Client) UploadReads(ctx context.Context, params UploadReadsParams) (UploadReadsResult, error) {
	var out UploadReadsResult
	if err := params.validate(); err != nil {
		return out, err
	}
	if err := c.rpc.Call(ctx, method(methodUploadReads), []any{params}, &out); err != nil {
		return UploadReadsResult{}, err
	}
	return out, nil
}

// DownloadReads fetches reads libraries to the service's scratch volume and
// returns per-library file locations and statistics.
func (c *Client) DownloadReads(ctx context.Context, params DownloadReadsParams) (DownloadReadsResult, error) {
	var out DownloadReadsResult
	if err := params.validate(); err != nil {
		return out, err
	}
	if err := c.rpc.Call(ctx, method(methodDownloadReads), []any{params}, &out); err != nil {
		return DownloadReadsResult{}, err
	}
	return out, nil
}

// ExportReads packages a reads library for export and returns the id of the
// package in the binary object store.
func (c *Client) ExportReads(ctx context.Context, params ExportParams) (ExportResult, error) {
	var out ExportResult
	if err := params.validate(); err != nil {
		return out, err
	}
	if err := c.rpc.Call(ctx, method(methodExportReads), []any{params}, &out); err != nil {
		return ExportResult{}, err
	}
	return out, nil
}

// Status reports the service's self-described state.
func (c *Client) Status(ctx context.Context) (Status, error) {
	var out Status
	if err := c.rpc.Call(ctx, method(methodStatus), nil, &out); err != nil {
		return Status{}, err
	}
	return out, nil
}

// Version returns the service's semantic version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var v string
	if err := c.rpc.Call(ctx, method(methodVersion), nil, &v); err != nil {
		return "", err
	}
	return v, nil
}
