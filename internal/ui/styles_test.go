package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLatency(t *testing.T) {
	assert.Equal(t, "—", FormatLatency(0))
	assert.Equal(t, "3.4ms", FormatLatency(3400*time.Microsecond))
	assert.Equal(t, "23ms", FormatLatency(23*time.Millisecond))
	assert.Equal(t, "1500ms", FormatLatency(1500*time.Millisecond))
}

func TestTruncateURL(t *testing.T) {
	assert.Equal(t, "https://a.rpc", TruncateURL("https://a.rpc", 44))
	assert.Equal(t, "https://ver…", TruncateURL("https://very-long-provider.example.com/v3/key", 12))
	assert.Equal(t, "ab", TruncateURL("ab", 1), "max <= 1 leaves the URL alone")
}

func TestLatencyStyleBands(t *testing.T) {
	assert.Equal(t, StyleMeta, LatencyStyle(0))
	assert.Equal(t, StyleSuccess, LatencyStyle(40*time.Millisecond))
	assert.Equal(t, StyleWarning, LatencyStyle(300*time.Millisecond))
	assert.Equal(t, StyleError, LatencyStyle(2*time.Second))
}
