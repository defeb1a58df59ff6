package editor

import (
	"errors"
	"fmt"
)

// User-facing messages.
const (
	duplicateMessage  = "That song is already in the database. To edit, first cancel, then choose Edit to modify."
	deletePrompt      = "Are you sure you want to delete the selected song?"
	saveFailedMessage = "Something went wrong. Changes not saved."
	savedMessage      = "Saved."
)

var (
	// ErrIllegalTransition is returned for an action the current mode does not accept.
	ErrIllegalTransition = errors.New("action not allowed in current mode")
	// ErrNoSelection is returned by Edit and Delete when no song is selected.
	ErrNoSelection = errors.New("no song selected")
)

// ValidationError reports a missing or unusable field value.
type ValidationError struct {
	Field   Field
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(f Field) *ValidationError {
	return &ValidationError{Field: f, Message: fmt.Sprintf("You must enter the %s.", f.noun())}
}

func commaInField(f Field) *ValidationError {
	return &ValidationError{Field: f, Message: fmt.Sprintf("The %s must not contain a comma.", f.noun())}
}

// PriceFormatError reports a price that is not a non-negative number.
type PriceFormatError struct {
	Input string
	Err   error
}

func (e *PriceFormatError) Error() string {
	return "The price must be a number."
}

func (e *PriceFormatError) Unwrap() error {
	return e.Err
}

// ReadOnlyError is returned when setting a field the current mode does not allow editing.
type ReadOnlyError struct {
	Field Field
	Mode  Mode
}

func (e *ReadOnlyError) Error() string {
	return fmt.Sprintf("%s is read-only in %s mode", e.Field.Label(), e.Mode)
}
