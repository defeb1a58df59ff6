// Package components provides reusable TUI components.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/layout"
	"github.com/user/songdb/tui/styles"
)

// RenderInfoBox renders a bordered box with a tab-style header and content lines.
// Content lines are rendered as-is (caller handles styling) and padded or cut
// to the inner width. An active box draws its border in the focus colour.
//
//	╭─ Title ──────╮
//	│content       │
//	╰──────────────╯
func RenderInfoBox(title string, contentLines []string, width int, active bool) string {
	if width < 4 {
		return ""
	}
	innerWidth := width - 2

	borderColor := styles.Purple
	if active {
		borderColor = styles.BrightPurple
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	headerText := styles.Header.Render(" " + title + " ")
	fillWidth := innerWidth - 1 - lipgloss.Width(headerText)
	if fillWidth < 0 {
		fillWidth = 0
	}
	topLine := border.Render("╭─") + headerText + border.Render(strings.Repeat("─", fillWidth)+"╮")

	lines := make([]string, 0, len(contentLines)+2)
	lines = append(lines, layout.PadToWidth(topLine, width))
	for _, line := range contentLines {
		lines = append(lines, border.Render("│")+layout.PadToWidth(line, innerWidth)+border.Render("│"))
	}
	lines = append(lines, border.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(lines, "\n")
}
