// Package ui holds the terminal styles and the live watch view.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	ColorSuccess   = lipgloss.Color("#00D26A") // green  — healthy, winner
	ColorWarning   = lipgloss.Color("#FFB800") // yellow — slow, degraded
	ColorError     = lipgloss.Color("#FF4444") // red    — failing
	ColorURL       = lipgloss.Color("#00B4D8") // cyan   — provider URLs
	ColorMeta      = lipgloss.Color("#555555") // dim gray — metadata
	ColorHighlight = lipgloss.Color("#F15BB5") // pink   — fastest row
	ColorTitle     = lipgloss.Color("#9B5DE5") // purple — headings
)

// Base styles.
var (
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	StyleURL     = lipgloss.NewStyle().Foreground(ColorURL)
	StyleMeta    = lipgloss.NewStyle().Foreground(ColorMeta)

	StyleFastest = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Underline(true)

	StyleTitle = lipgloss.NewStyle().
			Foreground(ColorTitle).
			Bold(true).
			MarginBottom(1)
)

// Success formats a success message.
func Success(msg string) string { return StyleSuccess.Render("✓ " + msg) }

// Warn formats a warning message.
func Warn(msg string) string { return StyleWarning.Render("⚠ " + msg) }

// Err formats an error message.
func Err(msg string) string { return StyleError.Render("✗ " + msg) }

// Meta formats metadata text.
func Meta(m string) string { return StyleMeta.Render(m) }

// URL formats a provider URL.
func URL(u string) string { return StyleURL.Render(u) }

// FormatLatency renders a duration as milliseconds with sub-ms precision
// kept for fast local nodes: "23ms", "3.4ms".
func FormatLatency(d time.Duration) string {
	if d <= 0 {
		return "—"
	}
	ms := float64(d.Microseconds()) / 1000.0
	if ms < 10 {
		return fmt.Sprintf("%.1fms", ms)
	}
	return fmt.Sprintf("%.0fms", ms)
}

// LatencyStyle picks a color band for a measured latency.
func LatencyStyle(d time.Duration) lipgloss.Style {
	switch {
	case d <= 0:
		return StyleMeta
	case d < 150*time.Millisecond:
		return StyleSuccess
	case d < 600*time.Millisecond:
		return StyleWarning
	default:
		return StyleError
	}
}

// TruncateURL shortens a long provider URL for table display.
func TruncateURL(u string, max int) string {
	if max <= 1 || len(u) <= max {
		return u
	}
	return u[:max-1] + "…"
}
