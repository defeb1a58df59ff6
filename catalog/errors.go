package catalog

import "fmt"

// DuplicateKeyError is returned when inserting an item code that already exists.
type DuplicateKeyError struct {
	Code string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("item code %q already exists", e.Code)
}

// NotFoundError is returned when an item code is not in the catalog.
type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item code %q not found", e.Code)
}
