// Package device turns raw User-Agent strings into short display names for
// audit events, so operators read "Chrome on Macintosh" instead of the full
// token soup.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent renders a human-readable "<browser> on <platform>" name.
// Unknown or empty input still yields a stable, non-empty string.
func ParseUserAgent(raw string) string {
	if raw == "" {
		return "Unknown Device"
	}
	ua := useragent.New(raw)
	name, _ := ua.Browser()
	if name == "" {
		name = "Unknown Browser"
	}
	platform := ua.Platform()
	if platform == "" {
		platform = "Unknown Platform"
	}
	return strings.TrimSpace(name + " on " + platform)
}
