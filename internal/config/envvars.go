// ABOUTME: Environment variable expansion in config string fields
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// resolveEnvVars expands ${VAR} patterns in string fields of Settings.
func resolveEnvVars(s *Settings) {
	s.Tag = expandEnv(s.Tag)
	s.Metadata = expandEnv(s.Metadata)
	s.ErrorDest = expandEnv(s.ErrorDest)
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
