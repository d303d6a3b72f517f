package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// noColor drops the footer's raw colour escapes. lipgloss already honours
// NO_COLOR for styled text.
var noColor = os.Getenv("NO_COLOR") != ""

var (
	pageTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	pageTextStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c0c0")).
			MarginBottom(1)

	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpDescStyle = lipgloss.NewStyle().Faint(true)
)
