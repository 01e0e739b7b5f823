// ABOUTME: Environment variable expansion and TERMSCREEN_* overrides for settings
// ABOUTME: Replaces ${VAR} patterns with os.Getenv values; unset vars become empty

package config

import (
	"os"
	"regexp"
)

// Environment overrides, applied after the config files are merged.
const (
	EnvBackend  = "TERMSCREEN_BACKEND"
	EnvLogLevel = "TERMSCREEN_LOG_LEVEL"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in string fields of Settings.
func ResolveEnvVars(s *Settings) {
	s.Backend = expandEnv(s.Backend)
	s.LogLevel = expandEnv(s.LogLevel)
	s.Title = expandEnv(s.Title)
}

// ApplyEnvOverrides replaces fields whose TERMSCREEN_* variable is set and non-empty.
func ApplyEnvOverrides(s *Settings) {
	if v := os.Getenv(EnvBackend); v != "" {
		s.Backend = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
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
