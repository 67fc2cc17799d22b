package config

import (
	"os"
	"slices"
	"strings"
)

var (
	EnvTrue  = []string{"1", "yes", "true", "on"}  // EnvTrue are the values considered "true" by [EnvBool], and can be changed.
	EnvFalse = []string{"0", "no", "false", "off"} // EnvFalse are the values considered "false" by [EnvBool], and can be changed.

	lookupEnv = os.LookupEnv
)

// Env gets an environment variable value, trimmed of surrounding space.
// If the variable isn't set, or is blank, then defaultVal is returned.
func Env(key, defaultVal string) string {
	val, ok := lookupEnv(key)
	if !ok {
		return defaultVal
	}
	val = strings.TrimSpace(val)
	if len(val) == 0 {
		return defaultVal
	}
	return val
}

// EnvSet reports whether the environment variable has a non-blank value.
// This matches conventions like NO_COLOR, where any value at all enables the behavior.
func EnvSet(key string) bool {
	return len(Env(key, "")) > 0
}

// EnvBool interprets an environment variable as a boolean using [EnvTrue] and [EnvFalse], compared case-insensitive.
// The defaultVal is returned if the variable isn't set, is blank, or isn't recognized.
func EnvBool(key string, defaultVal bool) bool {
	val := strings.ToLower(Env(key, ""))
	switch {
	case len(val) == 0:
		return defaultVal
	case slices.Contains(EnvTrue, val):
		return true
	case slices.Contains(EnvFalse, val):
		return false
	default:
		return defaultVal
	}
}
