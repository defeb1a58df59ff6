package forms

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/styles"
)

// Theme returns a huh theme matching the TUI palette. songdb only shows
// confirm dialogs, so only the title, description and button styles differ
// from the base theme.
func Theme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.
		BorderStyle(lipgloss.ThickBorder()).
		BorderLeft(true).
		BorderForeground(styles.BrightPurple).
		PaddingLeft(1)
	t.Focused.Title = lipgloss.NewStyle().Foreground(styles.Pink).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(styles.Lavender)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(styles.Red).Bold(true)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(styles.Red)
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Background(styles.BrightPurple).
		Foreground(styles.LightLavender).
		Bold(true).
		Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().
		Background(styles.Purple).
		Foreground(styles.Lavender).
		Padding(0, 1)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Title = lipgloss.NewStyle().Foreground(styles.Lavender)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(styles.Purple)

	return t
}
