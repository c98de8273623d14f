package main

import "github.com/charmbracelet/lipgloss"

var (
	okStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#1a7f37", Dark: "#3fb950",
	})
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#9a6700", Dark: "#d29922",
	})
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#cf222e", Dark: "#f85149",
	})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#57606a", Dark: "#8b949e",
	})
	boldStyle = lipgloss.NewStyle().Bold(true)
)
