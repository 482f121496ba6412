package styles

import "github.com/charmbracelet/lipgloss"

// Monokai Pro color palette
const (
	// Accent colors
	Red    = "#FF6188" // Errors, danger
	Orange = "#FC9867" // Warnings
	Yellow = "#FFD866" // Highlights
	Green  = "#A9DC76" // Success
	Cyan   = "#78DCE8" // Info

	// UI colors
	Comment = "#727072" // Dim text, help
)

// Common styles
var (
	SuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Green))
	ErrorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(Red))
	WarningStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(Orange))
	DimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color(Comment))
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(Yellow)).Bold(true)
)
