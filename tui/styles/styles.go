// Package styles provides Lipgloss styles for the TUI using the Ciapre colour palette.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - Ciapre (warm, earthy) theme from Gogh
const (
	// DeepPurple is the main background colour (Ciapre background)
	DeepPurple = lipgloss.Color("#191C27")
	// DarkPurple is a secondary dark background (Ciapre ANSI 0 black)
	DarkPurple = lipgloss.Color("#181818")
	// Purple is the border/dim accent colour (Ciapre ANSI 6 brown)
	Purple = lipgloss.Color("#5C4F4B")
	// BrightPurple is used for highlights and focus states (Ciapre ANSI 5 magenta)
	BrightPurple = lipgloss.Color("#724D7C")
	// Lavender is a secondary text colour (Ciapre foreground)
	Lavender = lipgloss.Color("#AEA47A")
	// LightLavender is the primary text colour (Ciapre ANSI 14 cream)
	LightLavender = lipgloss.Color("#F3DBB2")
	// Pink is an accent colour for headers (Ciapre ANSI 13 bright magenta)
	Pink = lipgloss.Color("#D33061")
	// Cyan is an accent colour for interactive elements (Ciapre ANSI 12 bright blue)
	Cyan = lipgloss.Color("#3097C6")
	// Amber marks the current edit mode (Ciapre derived)
	Amber = lipgloss.Color("#CC8B3F")
	// Red is used for validation and save errors (Ciapre ANSI 1)
	Red = lipgloss.Color("#AC3835")
	// Green is used for confirmations (Ciapre ANSI 2)
	Green = lipgloss.Color("#A6A75D")
)

// Highlight is the style for the selected song row
var Highlight = lipgloss.NewStyle().
	Background(BrightPurple).
	Foreground(LightLavender).
	Bold(true)

// PrimaryText is the style for field values
var PrimaryText = lipgloss.NewStyle().
	Foreground(LightLavender)

// SecondaryText is the style for labels and hints
var SecondaryText = lipgloss.NewStyle().
	Foreground(Lavender)

// DimText is the style for read-only values while another mode is active
var DimText = lipgloss.NewStyle().
	Foreground(Purple)

// Header is the style for panel titles
var Header = lipgloss.NewStyle().
	Foreground(Pink).
	Bold(true)

// ModeBadge renders the current mode name
var ModeBadge = lipgloss.NewStyle().
	Foreground(DarkPurple).
	Background(Amber).
	Bold(true).
	Padding(0, 1)

// Warning is the style for error messages
var Warning = lipgloss.NewStyle().
	Foreground(Red).
	Bold(true)

// Success is the style for confirmation messages
var Success = lipgloss.NewStyle().
	Foreground(Green).
	Bold(true)
