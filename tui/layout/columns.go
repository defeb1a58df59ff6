package layout

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/styles"
)

// Responsive layout constants.
const (
	MinTerminalWidth = 60 // below this the TUI shows a resize warning
	ListMinWidth     = 24 // song list never shrinks below this
	ListMaxWidth     = 48 // song list never grows beyond this
)

// ComputeColumnWidths splits the terminal between the song list and the
// detail panel, leaving one column for the separator. The list takes a
// third of the width, clamped to [ListMinWidth, ListMaxWidth].
func ComputeColumnWidths(termWidth int) (list, detail int) {
	usable := termWidth - 1
	list = usable / 3
	if list < ListMinWidth {
		list = ListMinWidth
	}
	if list > ListMaxWidth {
		list = ListMaxWidth
	}
	detail = usable - list
	if detail < 0 {
		detail = 0
	}
	return list, detail
}

// JoinColumns joins pre-rendered column strings side by side with purple border separators.
// Each column is normalized to the given height and padded to its width.
func JoinColumns(columns []string, widths []int, height int) string {
	borderStr := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render("│")

	colLines := make([][]string, len(columns))
	for i, col := range columns {
		colLines[i] = NormalizeLines(strings.Split(col, "\n"), height)
	}

	rows := make([]string, 0, height)
	for row := 0; row < height; row++ {
		parts := make([]string, 0, len(colLines))
		for i, lines := range colLines {
			parts = append(parts, PadToWidth(lines[row], widths[i]))
		}
		rows = append(rows, strings.Join(parts, borderStr))
	}

	return strings.Join(rows, "\n")
}
