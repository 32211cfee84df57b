// ABOUTME: Tests for the opt-in version compatibility pre-flight
// ABOUTME: Client is pinned at 1.3.x; exercises major skew, older minor, newer minor

package readsutils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ugswork/ReadsUtils/internal/auth"
)

func versionClient(t *testing.T, serverVersion string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.1","result":["` + serverVersion + `"]}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(srv.URL, auth.Static("test-token"))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return c
}

func TestCheckCompatibilityMajorMismatch(t *testing.T) {
	t.Parallel()

	c := versionClient(t, "2.5")
	_, err := c.CheckCompatibility(context.Background())
	var incompat *IncompatibleError
	if !errors.As(err, &incompat) {
		t.Fatalf("got %T (%v), want *IncompatibleError", err, err)
	}
	if incompat.Server != "2.5" {
		t.Errorf("got server version %q, want 2.5", incompat.Server)
	}
}

func TestCheckCompatibilityNewerMinorWarns(t *testing.T) {
	t.Parallel()

	c := versionClient(t, "1.7")
	warning, err := c.CheckCompatibility(context.Background())
	if err != nil {
		t.Fatalf("CheckCompatibility() error: %v", err)
	}
	if warning == "" {
		t.Error("expected a warning for a newer server minor version")
	}
}

func TestCheckCompatibilityOlderMinorFails(t *testing.T) {
	t.Parallel()

	c := versionClient(t, "1.1")
	_, err := c.CheckCompatibility(context.Background())
	var incompat *IncompatibleError
	if !errors.As(err, &incompat) {
		t.Fatalf("got %T (%v), want *IncompatibleError", err, err)
	}
}

func TestCheckCompatibilitySameMinor(t *testing.T) {
	t.Parallel()

	c := versionClient(t, "1.3.9")
	warning, err := c.CheckCompatibility(context.Background())
	if err != nil {
		t.Fatalf("CheckCompatibility() error: %v", err)
	}
	if warning != "" {
		t.Errorf("unexpected warning: %q", warning)
	}
}

func TestCheckCompatibilityGarbageVersion(t *testing.T) {
	t.Parallel()

	c := versionClient(t, "not-semver")
	_, err := c.CheckCompatibility(context.Background())
	var incompat *IncompatibleError
	if !errors.As(err, &incompat) {
		t.Fatalf("got %T (%v), want *IncompatibleError", err, err)
	}
}

func TestParseVersion(t *testing.T) {
	t.Parallel()

	major, minor, err := parseVersion("1.3.2")
	if err != nil {
		t.Fatalf("parseVersion() error: %v", err)
	}
	if major != 1 || minor != 3 {
		t.Errorf("got %d.%d, want 1.3", major, minor)
	}

	if _, _, err := parseVersion("7"); err == nil {
		t.Error("expected error for version without minor component")
	}
}
