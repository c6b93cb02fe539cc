package metadata

import (
	"errors"
	"fmt"
)

// ErrColumnNotFound is returned when a column lookup matches no column.
var ErrColumnNotFound = errors.New("column not found")

// ErrMetadataAccess reports a failure talking to the database while
// reading its metadata.
type ErrMetadataAccess struct {
	Op    string
	Table string
	Cause error
}

func (e *ErrMetadataAccess) Error() string {
	return fmt.Sprintf("metadata access error: %s %s: %v", e.Op, e.Table, e.Cause)
}

func (e *ErrMetadataAccess) Unwrap() error {
	return e.Cause
}
