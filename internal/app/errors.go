package app

import (
	"errors"
	"fmt"
)

// ErrNotConnected is returned by Service operations that need a connection.
var ErrNotConnected = errors.New("not connected")

// ErrConnection represents a database connection error.
type ErrConnection struct {
	Driver string
	Cause  error
}

func (e *ErrConnection) Error() string {
	return fmt.Sprintf("connection error (%s): %v", e.Driver, e.Cause)
}

func (e *ErrConnection) Unwrap() error {
	return e.Cause
}

// ErrMetadata represents a failure loading table metadata.
type ErrMetadata struct {
	Schema string
	Table  string
	Cause  error
}

func (e *ErrMetadata) Error() string {
	return fmt.Sprintf("metadata error for %s: %v", qualified(e.Schema, e.Table), e.Cause)
}

func (e *ErrMetadata) Unwrap() error {
	return e.Cause
}

// ErrConfig represents a configuration error.
type ErrConfig struct {
	Cause error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config error: %v", e.Cause)
}

func (e *ErrConfig) Unwrap() error {
	return e.Cause
}

func qualified(schema, table string) string {
	if schema == "" {
		return table
	}
	return schema + "." + table
}
