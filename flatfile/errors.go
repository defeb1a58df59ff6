package flatfile

import "fmt"

// MalformedRecordError describes a record line that could not be parsed.
type MalformedRecordError struct {
	// Line is the 1-based line number, or 0 when parsing a single line.
	Line   int
	Text   string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record: %s", e.Reason)
}

// WriteError wraps a failure to save the database file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("save %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
