package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/linkage/internal/canvas"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#CC6F00", Dark: "#FF8C00"})

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A00000", Dark: "#FF8080"})
)

// Dot colours on the braille canvas.
var (
	crankColor  = canvas.RGB{R: 200, G: 200, B: 200}
	rodColor    = canvas.RGB{R: 230, G: 60, B: 60}
	pivotColor  = canvas.RGB{R: 255, G: 140, B: 0}
	trailNew    = canvas.RGB{R: 120, G: 170, B: 255}
	trailOld    = canvas.RGB{R: 40, G: 50, B: 80}
	driverColor = canvas.RGB{R: 255, G: 95, B: 31}
)
