package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorAccent  lipgloss.Color = "#89b4fa"
	colorSuccess lipgloss.Color = "#a6e3a1"
	colorError   lipgloss.Color = "#f38ba8"
	colorTabOff  lipgloss.Color = "#7f849c"
)

var (
	tabActiveStyle   = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Padding(0, 2)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorTabOff).Padding(0, 2)
	titleStyle       = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	statusStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	statusErrStyle   = lipgloss.NewStyle().Foreground(colorError)
	footerStyle      = lipgloss.NewStyle().Foreground(colorMuted)
	hintStyle        = lipgloss.NewStyle().Foreground(colorBorder)
)
