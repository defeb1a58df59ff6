package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/user/songdb/tui/styles"
)

// modeHints lists the keys that matter in each mode.
var modeHints = map[string]string{
	"View":   "a add · e edit · d delete · s save · x exit · ? help",
	"Add":    "tab next · enter accept · esc cancel",
	"Edit":   "tab next · enter accept · esc cancel",
	"Delete": "enter accept · esc cancel",
}

// ModeIndicator renders the mode box: "Current Mode: <mode>" on the left and
// the mode's key hints on the right.
func ModeIndicator(mode string, width int) string {
	left := " Current Mode: " + styles.ModeBadge.Render(mode)
	right := styles.SecondaryText.Render(modeHints[mode] + " ")

	innerW := width - 2
	pad := innerW - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		// Too narrow for hints
		return RenderInfoBox("Mode", []string{left}, width, false)
	}

	line := left + strings.Repeat(" ", pad) + right
	return RenderInfoBox("Mode", []string{line}, width, false)
}
