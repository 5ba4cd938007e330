package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/v2"
)

// Duration wraps time.Duration for clearer type usage in Config.
type Duration = time.Duration

// Uncached is the revalidation window of a resource configured with 0: it is fetched on every request.
const Uncached Duration = -1

// source resolves a setting from the process environment first, then from the optional config file.
// File keys are the lower-cased environment variable names.
type source struct {
	file *koanf.Koanf
}

func (s source) lookup(key string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	if s.file == nil {
		return ""
	}
	return strings.TrimSpace(s.file.String(strings.ToLower(key)))
}

func (s source) envOrDefault(key, defaultValue string) string {
	if val := s.lookup(key); val != "" {
		return val
	}
	return defaultValue
}

func (s source) durationEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := s.lookup(key)
	if raw == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

// secondsEnvOrDefault accepts either a bare number of seconds ("3600") or a Go duration ("1h").
// Zero yields Uncached; negative or malformed values keep the default.
func (s source) secondsEnvOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := s.lookup(key)
	if raw == "" {
		return defaultValue
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		switch {
		case secs == 0:
			return Uncached
		case secs < 0:
			return defaultValue
		}
		return time.Duration(secs) * time.Second
	}
	if parsed, err := time.ParseDuration(raw); err == nil && parsed == 0 {
		return Uncached
	}
	return s.durationEnvOrDefault(key, defaultValue)
}

func (s source) intEnvOrDefault(key string, defaultValue int) int {
	raw := s.lookup(key)
	if raw == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return defaultValue
	}
	return val
}

func (s source) boolEnvOrDefault(key string, defaultValue bool) bool {
	raw := s.lookup(key)
	if raw == "" {
		return defaultValue
	}
	if raw == "1" || strings.EqualFold(raw, "true") || strings.EqualFold(raw, "yes") {
		return true
	}
	if raw == "0" || strings.EqualFold(raw, "false") || strings.EqualFold(raw, "no") {
		return false
	}
	return defaultValue
}
