// ABOUTME: Opt-in client/server semantic version pre-flight check
// ABOUTME: Major mismatch or an older server minor fails; a newer minor only warns

package readsutils

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ugswork/ReadsUtils/internal/log"
)

// clientVersion is the service interface version this client was built
// against, MAJOR.MINOR[.PATCH].
const clientVersion = "1.3.2"

// CheckCompatibility calls the service's version operation and compares
// semantic versions. It is not invoked automatically; callers opt in, usually
// once after construction.
//
// It fails with *IncompatibleError when the major versions differ or the
// server's minor version is older than the client's. A server minor version
// newer than the client's succeeds but returns a non-empty warning.
func (c *Client) CheckCompatibility(ctx context.Context) (warning string, err error) {
	server, err := c.Version(ctx)
	if err != nil {
		return "", err
	}

	cMajor, cMinor, err := parseVersion(clientVersion)
	if err != nil {
		return "", fmt.Errorf("readsutils: bad client version %q: %w", clientVersion, err)
	}
	sMajor, sMinor, err := parseVersion(server)
	if err != nil {
		return "", &IncompatibleError{
			Client: clientVersion,
			Server: server,
			Reason: "server version is not semantic: " + err.Error(),
		}
	}

	switch {
	case sMajor != cMajor:
		return "", &IncompatibleError{
			Client: clientVersion,
			Server: server,
			Reason: fmt.Sprintf("major version mismatch (%d vs %d)", cMajor, sMajor),
		}
	case sMinor < cMinor:
		return "", &IncompatibleError{
			Client: clientVersion,
			Server: server,
			Reason: fmt.Sprintf("server minor version %d is older than client minor version %d", sMinor, cMinor),
		}
	case sMinor > cMinor:
		warning = fmt.Sprintf("server %s is newer than client %s; some features may be unavailable to this client", server, clientVersion)
		log.Warn("version skew", "client", clientVersion, "server", server)
		return warning, nil
	}
	return "", nil
}

// parseVersion extracts the major and minor components of a semantic version.
func parseVersion(v string) (major, minor int, err error) {
	parts := strings.Split(strings.TrimSpace(v), ".")
	if len(parts) < 2 {
		return 0, 0, fmt.Errorf("want MAJOR.MINOR, got %q", v)
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad major component %q", parts[0])
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad minor component %q", parts[1])
	}
	return major, minor, nil
}
