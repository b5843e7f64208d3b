package pretty

import (
	"os"
	"strings"
)

// ColorMode represents the level of color support available in the terminal
type ColorMode int

const (
	// ColorModeNone indicates no color support (NO_COLOR set or dumb terminal)
	ColorModeNone ColorMode = iota
	// ColorModeBasic indicates 16 basic ANSI colors
	ColorModeBasic
	// ColorMode256 indicates 256-color palette support
	ColorMode256
	// ColorModeTrueColor indicates 24-bit RGB support
	ColorModeTrueColor
)

var (
	detectedColorMode ColorMode
	colorModeDetected bool
)

// DetectColorMode checks NO_COLOR, COLORTERM and TERM, in that order. The
// result is cached for the lifetime of the process.
func DetectColorMode() ColorMode {
	if !colorModeDetected {
		detectedColorMode = colorModeFromEnvironment()
		colorModeDetected = true
	}
	return detectedColorMode
}

func colorModeFromEnvironment() ColorMode {
	if os.Getenv("NO_COLOR") != "" {
		return ColorModeNone
	}
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}
	term := os.Getenv("TERM")
	switch {
	case term == "" || term == "dumb":
		return ColorModeNone
	case strings.Contains(term, "256color"):
		return ColorMode256
	default:
		return ColorModeBasic
	}
}

// SeverityColor returns the color for a message severity.
// trace→dim, debug→gray, info→white, warning→yellow, error→red, critical→bright red+bold
func SeverityColor(level string) string {
	if Colorless || Disabled {
		return ""
	}

	switch strings.ToLower(level) {
	case "trace":
		return Faint
	case "debug":
		return Grey
	case "info":
		return White
	case "warning", "warn":
		return Yellow
	case "error":
		return Red
	case "critical", "fatal":
		if Red == "" {
			return ""
		}
		return csi("91;1m")
	default:
		return ""
	}
}

// StatusColor returns the color for an operation status.
func StatusColor(status string) string {
	if Colorless || Disabled {
		return ""
	}

	switch strings.ToLower(status) {
	case "pending":
		return Grey
	case "running", "in-progress", "in_progress":
		return Cyan
	case "complete", "completed", "success", "done":
		return Green
	case "failed", "failure", "error":
		return Red
	case "skipped", "skip":
		return Faint
	default:
		return ""
	}
}
