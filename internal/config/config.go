// ABOUTME: Per-call RPC settings resolved from a YAML file plus KBRPC_* env overrides
// ABOUTME: Environment always wins over the file; timeout defaults to 1800 seconds

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables honored by every client instance.
const (
	EnvTag       = "KBRPC_TAG"
	EnvMetadata  = "KBRPC_METADATA"
	EnvErrorDest = "KBRPC_ERROR_DEST"
	EnvTimeout   = "KBRPC_TIMEOUT"
	EnvConfig    = "KBRPC_CONFIG"
)

// DefaultTimeout bounds a whole RPC round trip when KBRPC_TIMEOUT is unset.
const DefaultTimeout = 1800 * time.Second

// DefaultTag identifies requests that carry no caller-supplied tracing tag.
const DefaultTag = "go-readsutils-client"

// Settings holds the fixed per-client call settings: header values attached to
// every request and the whole-request timeout.
type Settings struct {
	Tag        string        `yaml:"tag"`
	Metadata   string        `yaml:"metadata"`
	ErrorDest  string        `yaml:"error_dest"`
	TimeoutSec int           `yaml:"timeout_sec"`
	Timeout    time.Duration `yaml:"-"`
}

// Resolve loads settings from the file named by KBRPC_CONFIG (if any), applies
// environment overrides, and fills in defaults.
func Resolve() (*Settings, error) {
	var s *Settings
	var err error

	if path := os.Getenv(EnvConfig); path != "" {
		s, err = Load(path)
		if err != nil {
			return nil, err
		}
	} else {
		s = &Settings{}
	}

	applyEnv(s)

	if s.Tag == "" {
		s.Tag = DefaultTag
	}
	if s.Timeout == 0 {
		if s.TimeoutSec > 0 {
			s.Timeout = time.Duration(s.TimeoutSec) * time.Second
		} else {
			s.Timeout = DefaultTimeout
		}
	}
	return s, nil
}

// Load reads Settings from a YAML file. String fields may reference
// environment variables as ${VAR}.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading client config: %w", err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	resolveEnvVars(&s)
	return &s, nil
}

// applyEnv overrides file-derived values with KBRPC_* environment variables.
func applyEnv(s *Settings) {
	if v := os.Getenv(EnvTag); v != "" {
		s.Tag = v
	}
	if v := os.Getenv(EnvMetadata); v != "" {
		s.Metadata = v
	}
	if v := os.Getenv(EnvErrorDest); v != "" {
		s.ErrorDest = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
			s.Timeout = time.Duration(sec) * time.Second
		}
	}
}
