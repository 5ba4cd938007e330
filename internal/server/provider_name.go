package server

import (
	"fmt"
	"strings"
)

// normalizeProviderName returns a lower-cased provider name, deriving it from the instance type when not configured.
// The result labels metrics, breaker state and retry logs.
func normalizeProviderName(raw string, provider any) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		name := strings.ToLower(fmt.Sprintf("%T", provider))
		name = strings.TrimPrefix(name, "*")
		if pkg, _, ok := strings.Cut(name, "."); ok {
			return pkg
		}
		return name
	}
	return "provider"
}
