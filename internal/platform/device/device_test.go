package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	t.Run("empty user agent returns unknown device", func(t *testing.T) {
		assert.Equal(t, "Unknown Device", ParseUserAgent(""))
	})

	t.Run("chrome on desktop includes browser", func(t *testing.T) {
		raw := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
		got := ParseUserAgent(raw)
		assert.Contains(t, got, "Chrome")
		assert.Contains(t, got, "on")
		assert.NotContains(t, got, "  ")
	})

	t.Run("safari on iphone includes platform", func(t *testing.T) {
		raw := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
		got := ParseUserAgent(raw)
		assert.Contains(t, got, "on")
		assert.Contains(t, got, "iPhone")
	})

	t.Run("firefox on linux includes browser", func(t *testing.T) {
		raw := "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0"
		got := ParseUserAgent(raw)
		assert.Contains(t, got, "Firefox")
		assert.Contains(t, got, "on")
	})

	t.Run("unrecognized user agent still yields a name", func(t *testing.T) {
		got := ParseUserAgent("Unknown/1.0")
		assert.Contains(t, got, "on")
		assert.NotEmpty(t, got)
	})

	t.Run("no leading or trailing whitespace", func(t *testing.T) {
		got := ParseUserAgent("Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
		assert.Equal(t, got, strings.TrimSpace(got))
	})
}
