// Package forms provides huh-based confirm dialogs for songdb.
package forms

import (
	"github.com/charmbracelet/huh"
)

// CreatePrompt is asked when the database file given on the command line does not exist.
const CreatePrompt = "That database doesn't exist yet. Do you want to create it?"

// NewConfirmDiscardForm asks whether to throw away a pending add or edit.
// The result pointer is bound to the confirm field value.
func NewConfirmDiscardForm(discard *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard changes?").
				Description("The song you are editing has not been accepted.").
				Affirmative("Yes, discard").
				Negative("No, go back").
				Value(discard),
		),
	).WithTheme(Theme()).WithShowHelp(false)
}

// NewCreateDatabaseForm asks whether to create a missing database file.
// It runs standalone before the TUI starts.
func NewCreateDatabaseForm(path string, create *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(CreatePrompt).
				Description(path).
				Affirmative("Yes").
				Negative("No").
				Value(create),
		),
	).WithTheme(Theme())
}
