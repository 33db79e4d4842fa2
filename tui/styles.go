package tui

import (
	"github.com/charmbracelet/lipgloss"

	"text-translator/models"
)

var (
	colorPrimary   = lipgloss.Color("#3B82F6")
	colorMuted     = lipgloss.Color("#9CA3AF")
	colorPending   = lipgloss.Color("#2196F3")
	colorRendered  = lipgloss.Color("#4CAF50")
	colorAlert     = lipgloss.Color("#F44336")
	colorDiscarded = lipgloss.Color("#FFC107")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	selectorStyle = lipgloss.NewStyle().
			Padding(0, 1)

	focusedSelectorStyle = selectorStyle.
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorPrimary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAlert).
			Padding(0, 1).
			Bold(true)
)

func statusStyle(status models.ActionStatus) lipgloss.Style {
	s := lipgloss.NewStyle()
	switch status {
	case models.StatusPending:
		return s.Foreground(colorPending)
	case models.StatusRendered:
		return s.Foreground(colorRendered)
	case models.StatusAlertShown:
		return s.Foreground(colorAlert)
	case models.StatusDiscarded:
		return s.Foreground(colorDiscarded)
	default:
		return s.Foreground(colorMuted)
	}
}
