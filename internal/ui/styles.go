package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// TitleBar style for the header line.
var TitleBar = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// SelectedItem style for the currently highlighted headline.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// NormalItem style for other headlines.
var NormalItem = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// ExcludedItem style for headlines toggled out of the run.
var ExcludedItem = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Strikethrough(true).
	Padding(0, 1)

// PreviewPane style wraps the prompt preview.
var PreviewPane = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(0, 1)

// StatusBar style for the bottom line.
var StatusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusOK style for success notices in the status bar.
var StatusOK = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// StatusKey style for key hints in the status bar.
var StatusKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)
