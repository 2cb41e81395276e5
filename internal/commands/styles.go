package commands

import "github.com/charmbracelet/lipgloss"

// Console styles for command output.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B1B8C7"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
	totalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A78BFA")).Bold(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
)
