// ABOUTME: Bearer token acquisition: static tokens or legacy sessions login
// ABOUTME: Caches resolved tokens until near expiry; singleflight dedupes refreshes

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/ugswork/ReadsUtils/internal/log"
)

// ErrNoToken reports that no usable credential was supplied or resolved.
var ErrNoToken = errors.New("no auth token available")

// defaultTTL applies when the auth service reports no expiry.
const defaultTTL = 12 * time.Hour

// refreshMargin refreshes tokens this long before they expire.
const refreshMargin = time.Hour

// Static is a fixed, caller-supplied token.
type Static string

// Token implements the token provider contract for a fixed token.
func (s Static) Token(ctx context.Context) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}

// Service resolves tokens from an auth service's legacy sessions login
// endpoint and caches them until near expiry.
type Service struct {
	url        string
	user       string
	password   string
	httpClient *http.Client

	group singleflight.Group

	mu      sync.Mutex
	token   string
	expires time.Time
}

// New returns a Service that logs in to authURL with the given credentials.
func New(authURL, user, password string) *Service {
	return &Service{
		url:      authURL,
		user:     user,
		password: password,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Token returns a cached token, or logs in to obtain a fresh one. Concurrent
// callers needing a refresh share a single login request.
func (s *Service) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.token != "" && time.Now().Before(s.expires.Add(-refreshMargin)) {
		tok := s.token
		s.mu.Unlock()
		return tok, nil
	}
	s.mu.Unlock()

	v, err, _ := s.group.Do("login", func() (any, error) {
		return s.login(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// loginReply is the subset of the sessions login response the client needs.
type loginReply struct {
	Token   string `json:"token"`
	Expires int64  `json:"expires"` // unix millis; 0 if the service omits it
}

func (s *Service) login(ctx context.Context) (string, error) {
	if s.user == "" || s.password == "" {
		return "", ErrNoToken
	}

	form := url.Values{}
	form.Set("user_id", s.user)
	form.Set("password", s.password)
	form.Set("fields", "token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("auth service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("auth service login failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var reply loginReply
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("parsing login reply: %w", err)
	}
	if reply.Token == "" {
		return "", ErrNoToken
	}

	expires := time.Now().Add(defaultTTL)
	if reply.Expires > 0 {
		expires = time.UnixMilli(reply.Expires)
	}

	s.mu.Lock()
	s.token = reply.Token
	s.expires = expires
	s.mu.Unlock()

	log.Debug("auth token refreshed", "user", s.user, "expires", expires)
	return reply.Token, nil
}
