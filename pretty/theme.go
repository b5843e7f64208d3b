package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette used for lipgloss rendered output. Each color has a
// dark and light background variant.
type Theme struct {
	Accent  lipgloss.AdaptiveColor
	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Muted   lipgloss.AdaptiveColor
	Border  lipgloss.AdaptiveColor
}

var (
	ActiveTheme = DefaultTheme()
)

func DefaultTheme() Theme {
	return Theme{
		Accent:  lipgloss.AdaptiveColor{Dark: "#82aaff", Light: "#2e7de9"},
		Success: lipgloss.AdaptiveColor{Dark: "#c3e88d", Light: "#587539"},
		Warning: lipgloss.AdaptiveColor{Dark: "#ffcb6b", Light: "#8c6c3e"},
		Error:   lipgloss.AdaptiveColor{Dark: "#ff5370", Light: "#f52a65"},
		Muted:   lipgloss.AdaptiveColor{Dark: "#697098", Light: "#8990a3"},
		Border:  lipgloss.AdaptiveColor{Dark: "#5c6370", Light: "#c4c8da"},
	}
}

func colorful() bool {
	return !Colorless && !Disabled
}

// HeaderStyle is bold accent text, plain when colors are off.
func (it Theme) HeaderStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if !colorful() {
		return style
	}
	return style.Bold(true).Foreground(it.Accent)
}

func (it Theme) BorderStyle() lipgloss.Style {
	if !colorful() {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(it.Border)
}

// StatusStyle colors a cell by operation status, same statuses as
// StatusColor.
func (it Theme) StatusStyle(status string) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if !colorful() {
		return style
	}
	switch strings.ToLower(status) {
	case "complete", "completed", "success", "done":
		return style.Foreground(it.Success)
	case "failed", "failure", "error":
		return style.Foreground(it.Error)
	case "running", "in-progress", "in_progress":
		return style.Foreground(it.Accent)
	case "pending", "skipped", "skip":
		return style.Foreground(it.Muted)
	}
	return style
}
