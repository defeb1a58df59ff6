package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/layout"
	"github.com/user/songdb/tui/styles"
)

// emptyListText mirrors the prompt shown when the database has no songs.
const emptyListText = "Database empty. Add some songs!"

// SongListState holds the state for the song list component.
type SongListState struct {
	// Titles is the display projection, one title per song in item-code order
	Titles []string
	// SelectedIndex is the currently selected row, or -1
	SelectedIndex int
	// ScrollOffset is the first visible row
	ScrollOffset int
	// Locked dims the list while a pending change is being edited
	Locked bool
}

// Scroll adjusts ScrollOffset so the selected row is visible within rows lines.
func (s *SongListState) Scroll(rows int) {
	if rows <= 0 {
		s.ScrollOffset = 0
		return
	}
	if s.SelectedIndex >= 0 {
		if s.SelectedIndex < s.ScrollOffset {
			s.ScrollOffset = s.SelectedIndex
		} else if s.SelectedIndex >= s.ScrollOffset+rows {
			s.ScrollOffset = s.SelectedIndex - rows + 1
		}
	}
	maxOffset := len(s.Titles) - rows
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.ScrollOffset > maxOffset {
		s.ScrollOffset = maxOffset
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
}

// SongList renders the title list inside an info box of the given size.
func SongList(state SongListState, width, height int) string {
	innerWidth := width - 2
	rows := height - 2
	if rows < 1 {
		rows = 1
	}

	var lines []string
	if len(state.Titles) == 0 {
		empty := lipgloss.NewStyle().Foreground(styles.Purple).Italic(true)
		lines = append(lines, empty.Render(layout.Ellipsize(" "+emptyListText, innerWidth)))
	} else {
		state.Scroll(rows)
		end := state.ScrollOffset + rows
		if end > len(state.Titles) {
			end = len(state.Titles)
		}
		for i := state.ScrollOffset; i < end; i++ {
			text := layout.PadToWidth(" "+layout.Ellipsize(state.Titles[i], innerWidth-2)+" ", innerWidth)
			switch {
			case i == state.SelectedIndex && !state.Locked:
				text = styles.Highlight.Render(text)
			case i == state.SelectedIndex:
				text = styles.SecondaryText.Bold(true).Render(text)
			case state.Locked:
				text = styles.DimText.Render(text)
			default:
				text = styles.PrimaryText.Render(text)
			}
			lines = append(lines, text)
		}
	}
	lines = layout.NormalizeLines(lines, rows)

	title := fmt.Sprintf("Songs (%d)", len(state.Titles))
	return RenderInfoBox(title, lines, width, !state.Locked && len(state.Titles) > 0)
}
