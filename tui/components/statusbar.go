package components

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/layout"
	"github.com/user/songdb/tui/styles"
)

// StatusBarState holds what the top status bar shows.
type StatusBarState struct {
	// Path is the database file being edited
	Path string
	// Count is the number of songs in the catalog
	Count int
}

// StatusBar renders the full-width status bar with the database file on the
// left and the song count on the right.
func StatusBar(state StatusBarState, width int) string {
	left := fmt.Sprintf(" ♪ Your Song Database  %s", filepath.Base(state.Path))
	right := fmt.Sprintf("%d song(s) ", state.Count)

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}
	content := layout.PadToWidth(left, lipgloss.Width(left)+padding) + right

	barStyle := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Foreground(styles.LightLavender).
		Bold(true)

	return barStyle.Render(layout.PadToWidth(content, width))
}

// MessageLine renders the single status or error message below the panels.
func MessageLine(text string, isError bool, width int) string {
	if text == "" {
		return layout.PadToWidth("", width)
	}
	style := styles.Success
	if isError {
		style = styles.Warning
	}
	return layout.PadToWidth(style.Render(" "+text), width)
}
