package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/layout"
	"github.com/user/songdb/tui/styles"
)

// LabelWidth fits the longest label ("Description") plus a gap.
const LabelWidth = 13

// FieldRow is one labelled field in the detail panel.
type FieldRow struct {
	Label string
	// Value is the rendered value; for editable rows this is the text input view
	Value    string
	Editable bool
	Focused  bool
	// Hint is shown after the value, e.g. a formatted price
	Hint string
}

// SongFields renders the detail panel for the selected or pending song.
// Read-only rows are dimmed while dim is set (Delete mode).
func SongFields(title string, rows []FieldRow, width int, dim bool) string {
	innerWidth := width - 2

	label := lipgloss.NewStyle().Foreground(styles.Lavender).Width(LabelWidth)
	focusedLabel := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true).Width(LabelWidth)
	hint := lipgloss.NewStyle().Foreground(styles.Purple).Italic(true)

	lines := []string{""}
	active := false
	for _, row := range rows {
		l := label.Render(" " + row.Label)
		if row.Focused {
			l = focusedLabel.Render("▸" + row.Label)
			active = true
		}

		value := row.Value
		if !row.Editable {
			if dim {
				value = styles.DimText.Render(value)
			} else {
				value = styles.PrimaryText.Render(value)
			}
		}
		if row.Hint != "" {
			value += "  " + hint.Render(row.Hint)
		}
		lines = append(lines, layout.PadToWidth(l+value, innerWidth))
	}
	lines = append(lines, "")

	return RenderInfoBox(title, lines, width, active)
}
