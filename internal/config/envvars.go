// ABOUTME: Environment handling for settings: ${VAR} expansion and CHECKTREE_* overrides
// ABOUTME: Unset variables expand to empty strings

package config

import (
	"os"
	"regexp"
)

// Environment variables read by the config layer.
const (
	EnvConfigDir = "CHECKTREE_CONFIG_DIR"
	EnvTheme     = "CHECKTREE_THEME"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ResolveEnvVars expands ${VAR} patterns in the string fields of s, then
// applies CHECKTREE_THEME over the theme.
func ResolveEnvVars(s *Settings) {
	s.TreeID = expandEnv(s.TreeID)
	s.Theme = expandEnv(s.Theme)
	s.Format = expandEnv(s.Format)
	if v := os.Getenv(EnvTheme); v != "" {
		s.Theme = v
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR).
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
