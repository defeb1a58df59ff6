package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/styles"
)

type binding struct {
	key  string
	desc string
}

type bindingGroup struct {
	title    string
	bindings []binding
}

var helpGroups = []bindingGroup{
	{
		title: "Browse (View mode)",
		bindings: []binding{
			{"J / ↓", "Select next song"},
			{"K / ↑", "Select previous song"},
			{"g / G", "First / last song"},
			{"Y", "Copy item code"},
		},
	},
	{
		title: "Edit",
		bindings: []binding{
			{"A", "Add a song"},
			{"E", "Edit the selected song"},
			{"D", "Delete the selected song"},
			{"Tab", "Next field (Add/Edit)"},
			{"Shift+Tab", "Previous field (Add/Edit)"},
			{"Enter", "Accept"},
			{"Esc", "Cancel"},
		},
	},
	{
		title: "File",
		bindings: []binding{
			{"S / Ctrl+S", "Save"},
			{"X / Q", "Save and exit"},
			{"Ctrl+C", "Quit without saving"},
			{"?", "Show/hide this help"},
		},
	},
}

// HelpOverlay renders the help overlay centred in a width x height screen.
func HelpOverlay(width, height int) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true).
		Padding(0, 1)

	groupHeaderStyle := lipgloss.NewStyle().
		Foreground(styles.Pink).
		Bold(true).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Bold(true).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.LightLavender)

	lines := []string{titleStyle.Render("Keybindings"), ""}
	for _, group := range helpGroups {
		lines = append(lines, groupHeaderStyle.Render(group.title))
		for _, b := range group.bindings {
			lines = append(lines, "  "+keyStyle.Render(b.key)+descStyle.Render(b.desc))
		}
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(styles.Lavender).
		Italic(true)
	lines = append(lines, "", footerStyle.Render("Press any key to close"))

	panel := lipgloss.NewStyle().
		Background(styles.DarkPurple).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BrightPurple).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
}
